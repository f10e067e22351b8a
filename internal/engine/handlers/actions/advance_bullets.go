package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/internal/systems"

	"github.com/sirupsen/logrus"
)

// HandleAdvanceBullets двигает все пули на один шаг и применяет попадания.
//
// Все три эффекта (полет пуль, смерть героя, смерть снайпов) читают
// список пуль ДО тика, поэтому порядок проверок не важен.
func HandleAdvanceBullets(ctx handlers.Context, w domain.World, _ domain.Command) domain.World {
	next := w.Clone()

	// 1. Пули
	for i, b := range w.Bullets {
		if b == nil {
			continue
		}
		next.Bullets[i] = advanceBullet(w, b)
	}

	// 2. Герой
	if w.Hero != nil && systems.OverlapsAnyUnit(w.Bullets, w.Hero.Point(), domain.BulletHitHeroSize) {
		next.Hero = nil
		ctx.Log.WithFields(logrus.Fields{
			"hero": w.Hero.ID,
			"tick": w.MoveCounter,
		}).Info("Hero killed")
	}

	// 3. Снайпы
	for i, s := range w.Snipes {
		if s == nil {
			continue
		}
		if systems.OverlapsAnyUnit(w.Bullets, s.Point(), domain.BulletHitSnipeSize) {
			next.Snipes[i] = nil
			ctx.Log.WithFields(logrus.Fields{
				"snipe": s.ID,
				"slot":  i,
			}).Debug("Snipe killed")
		}
	}

	return next
}

// advanceBullet возвращает пулю после шага или nil, если она исчезла.
func advanceBullet(w domain.World, b *domain.Unit) *domain.Unit {
	pos := b.Point()

	// Попадание в героя или снайпа: пуля гаснет там, где стоит
	if systems.Overlaps(w.Hero.Point(), pos, domain.BulletHitHeroSize) ||
		systems.OverlapsAnyUnit(w.Snipes, pos, domain.BulletHitSnipeSize) {
		return nil
	}

	dest := systems.NextPoint(b.Dir, pos, domain.StepSize)

	if systems.OverlapsAnyPoint(w.WallPoints, dest, domain.BulletHitWallSize) {
		if !w.Settings.Ricochet {
			return nil
		}
		return b.Facing(systems.ReflectOffObstacles(b.Dir, *pos, w.WallPoints, domain.StepSize, domain.BulletHitWallSize))
	}

	moved := b.At(*dest)
	if systems.HitsBorder(*dest) {
		if !w.Settings.Ricochet {
			return nil
		}
		corrected := systems.CorrectBeyondBorder(*moved, domain.BulletSize)
		return &corrected
	}
	return moved
}
