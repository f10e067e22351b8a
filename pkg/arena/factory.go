package arena

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/systems"
	"snipes-server/pkg/utils"
)

// Стартовая расстановка
var (
	HeroStart = domain.Point{X: 400, Y: 400}

	SnipeStarts = []struct {
		Pos domain.Point
		Dir domain.Direction
	}{
		{domain.Point{X: 100, Y: 100}, domain.South},
		{domain.Point{X: 200, Y: 200}, domain.North},
		{domain.Point{X: 700, Y: 700}, domain.East},
		{domain.Point{X: 600, Y: 600}, domain.West},
	}
)

// NewHero создает героя в точке p, смотрящего на север.
func NewHero(p domain.Point) *domain.Unit {
	return &domain.Unit{ID: utils.GenerateID(), X: p.X, Y: p.Y, Dir: domain.North}
}

// NewSnipe создает снайпа в точке p с направлением d.
func NewSnipe(p domain.Point, d domain.Direction) *domain.Unit {
	return &domain.Unit{ID: utils.GenerateID(), X: p.X, Y: p.Y, Dir: d}
}

// MakeBullet выпускает пулю на расстоянии 2*shooterSize от центра стрелка вдоль d.
// Мертвый стрелок (nil) или неизвестное направление - пули нет.
func MakeBullet(shooter *domain.Unit, shooterSize float64, d domain.Direction) *domain.Unit {
	if shooter == nil || !d.Valid() {
		return nil
	}
	spawn := systems.NextPoint(d, shooter.Point(), 2*shooterSize)
	return &domain.Unit{ID: utils.GenerateID(), X: spawn.X, Y: spawn.Y, Dir: d}
}

// NewWorld собирает стартовый мир: герой в центре, четыре снайпа, без пуль и стен.
// Стены появляются отдельной командой CreateWalls.
func NewWorld(settings domain.Settings) domain.World {
	snipes := make([]*domain.Unit, 0, len(SnipeStarts))
	for _, s := range SnipeStarts {
		snipes = append(snipes, NewSnipe(s.Pos, s.Dir))
	}

	return domain.World{
		Hero:     NewHero(HeroStart),
		Snipes:   snipes,
		Bullets:  []*domain.Unit{},
		Walls:    []domain.Wall{},
		Settings: settings,
	}
}
