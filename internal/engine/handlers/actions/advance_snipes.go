package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/internal/systems"
	"snipes-server/pkg/arena"

	"github.com/sirupsen/logrus"
)

// HandleAdvanceSnipes - ход снайпов: смена курса, шаг с отскоком, стрельба.
// Счетчик ходов увеличивается ровно на 1.
func HandleAdvanceSnipes(ctx handlers.Context, w domain.World, _ domain.Command) domain.World {
	next := w.Clone()
	reassign := w.MoveCounter%domain.DirectionLimit == 0

	for i, s := range w.Snipes {
		if s == nil {
			continue
		}

		dir := s.Dir
		if reassign {
			dir = systems.RandomDirection(ctx.Rng)
		}

		dest := systems.NextPoint(dir, s.Point(), domain.StepSize)
		moved := s.At(*dest).Facing(dir)
		if snipeBlocked(w, i, dest) {
			// Стоим на месте и разворачиваемся
			moved = s.Facing(systems.OppositeDirection(dir, *dest))
		}

		corrected := systems.CorrectBeyondBorder(*moved, domain.SnipeSize)
		next.Snipes[i] = &corrected
	}

	if w.Settings.SnipesMayShoot && w.MoveCounter%domain.SnipeShootInterval == 0 {
		// Прицеливаемся по позициям до хода
		for _, s := range w.Snipes {
			dir, ok := systems.DetectAndAim(s, w.Hero)
			if !ok {
				continue
			}
			next.Bullets = domain.PlaceInSlot(next.Bullets, arena.MakeBullet(s, domain.SnipeShooterSize, dir))
			ctx.Log.WithFields(logrus.Fields{
				"snipe": s.ID,
				"dir":   dir,
			}).Debug("Snipe fired")
		}
	}

	next.MoveCounter++
	return next
}

// snipeBlocked проверяет точку назначения снайпа из слота self.
// Другие снайпы берутся из списка до хода, свой слот пропускается.
func snipeBlocked(w domain.World, self int, dest *domain.Point) bool {
	if systems.OverlapsAnyPoint(w.WallPoints, dest, domain.SnipeBlockWallSize) ||
		systems.OverlapsAnyUnit(w.Bullets, dest, domain.SnipeBlockBulletSize) ||
		systems.Overlaps(w.Hero.Point(), dest, domain.SnipeBlockHeroSize) {
		return true
	}
	for j, other := range w.Snipes {
		if j == self || other == nil {
			continue
		}
		if systems.Overlaps(other.Point(), dest, domain.SnipeBlockSnipeSize) {
			return true
		}
	}
	return false
}
