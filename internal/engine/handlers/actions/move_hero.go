package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/internal/systems"
)

// HandleMoveHero двигает героя на шаг в cmd.Dir.
// Уперся в стену или снайпа - стоит, но поворачивается.
func HandleMoveHero(ctx handlers.Context, w domain.World, cmd domain.Command) domain.World {
	if w.Hero == nil || !cmd.Dir.Valid() {
		return w
	}

	next := w.Clone()
	dest := systems.NextPoint(cmd.Dir, w.Hero.Point(), domain.StepSize)

	hero := w.Hero.Facing(cmd.Dir)
	if systems.OverlapsAnyPoint(w.WallPoints, dest, domain.HeroBlockSize) ||
		systems.OverlapsAnyUnit(w.Snipes, dest, domain.HeroBlockSize) {
		ctx.Log.WithField("dest", *dest).Debug("Hero blocked")
	} else {
		hero = hero.At(*dest)
	}

	corrected := systems.CorrectBeyondBorder(*hero, domain.HeroSize)
	next.Hero = &corrected
	return next
}
