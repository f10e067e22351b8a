package domain

import "time"

// Размеры арены
const (
	ArenaWidth  = 800.0
	ArenaHeight = 800.0
)

// Размеры юнитов (сторона квадрата коллизии)
const (
	HeroSize   = 10.0
	SnipeSize  = 5.0
	BulletSize = 3.0
	WallSize   = 3.0

	// SnipeShooterSize - "размер" стрелка, который передается в фабрику пули, когда стреляет снайп.
	// Пуля появляется на 2*SnipeShooterSize от снайпа и не задевает его самого.
	SnipeShooterSize = 20.0
)

// Темп симуляции
const (
	StepSize           = 10.0 // Смещение за один ход
	DirectionLimit     = 20   // Каждые N тиков снайпы выбирают новое направление
	SnipeShootInterval = 8    // Каждые N тиков снайпы пытаются выстрелить
	DetectionRadius    = 200.0

	TickInterval = 100 * time.Millisecond
)

// Радиусы коллизий, которыми пользуется движок.
const (
	BulletHitHeroSize  = HeroSize
	BulletHitSnipeSize = SnipeSize * 2
	BulletHitWallSize  = WallSize * 2 // > StepSize/2: пуля не проскочит стену с шагом в 1

	SnipeBlockWallSize   = SnipeSize
	SnipeBlockBulletSize = SnipeSize
	SnipeBlockSnipeSize  = SnipeSize * 2
	SnipeBlockHeroSize   = HeroSize * 2

	HeroBlockSize = HeroSize
)
