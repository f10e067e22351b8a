package systems

import (
	"math"

	"snipes-server/internal/domain"
	"snipes-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DetectAndAim решает, видит ли observer героя и в какую сторону стрелять.
//
// Цель должна быть ближе DetectionRadius и стоять ровно на одном из 8 лучей компаса
// (та же X, та же Y или точная диагональ 45°). "Почти на линии" - значит не видит:
// упреждения и подсчета азимута нет.
func DetectAndAim(observer, hero *domain.Unit) (domain.Direction, bool) {
	if observer == nil || hero == nil {
		return domain.DirectionNone, false
	}

	dist := Distance(*observer.Point(), *hero.Point())
	if dist >= domain.DetectionRadius {
		return domain.DirectionNone, false
	}

	dir := alignedDirection(hero.X-observer.X, hero.Y-observer.Y)
	if dir == domain.DirectionNone {
		return domain.DirectionNone, false
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "targeting_system",
		"observer":  observer.ID,
		"distance":  dist,
		"dir":       dir,
	}).Debug("Target aligned")

	return dir, true
}

// alignedDirection переводит смещение до цели в направление луча (ось Y вниз).
func alignedDirection(dx, dy float64) domain.Direction {
	switch {
	case dx == 0 && dy < 0:
		return domain.North
	case dx == 0 && dy > 0:
		return domain.South
	case dy == 0 && dx > 0:
		return domain.East
	case dy == 0 && dx < 0:
		return domain.West
	case dx == 0 || math.Abs(dx) != math.Abs(dy):
		return domain.DirectionNone
	case dx > 0 && dy < 0:
		return domain.NorthEast
	case dx > 0 && dy > 0:
		return domain.SouthEast
	case dx < 0 && dy > 0:
		return domain.SouthWest
	default:
		return domain.NorthWest
	}
}
