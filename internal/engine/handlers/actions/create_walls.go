package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/pkg/arena"
)

// HandleCreateWalls ставит стены пресета. Юниты не трогаем, поэтому повторный вызов
// посреди игры просто пересобирает препятствия.
func HandleCreateWalls(ctx handlers.Context, w domain.World, _ domain.Command) domain.World {
	next := w.Clone()
	next.Walls, next.WallPoints = arena.BuildDefaultWalls()

	ctx.Log.WithField("points", len(next.WallPoints)).Debug("Walls created")
	return next
}
