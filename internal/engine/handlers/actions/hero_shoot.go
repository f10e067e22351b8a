package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/pkg/arena"
)

// HandleHeroShoot добавляет одну пулю героя. Мертвый герой не стреляет.
func HandleHeroShoot(_ handlers.Context, w domain.World, cmd domain.Command) domain.World {
	bullet := arena.MakeBullet(w.Hero, domain.HeroSize, cmd.Dir)
	if bullet == nil {
		return w
	}

	next := w.Clone()
	next.Bullets = domain.PlaceInSlot(next.Bullets, bullet)
	return next
}
