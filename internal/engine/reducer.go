package engine

import (
	"math/rand"

	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/internal/engine/handlers/actions"
	"snipes-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Reducer - чистая функция (мир, команда) -> новый мир, разложенная по хендлерам.
// Единственное состояние - генератор случайных чисел, поэтому Reducer
// нельзя вызывать из нескольких горутин одновременно.
type Reducer struct {
	handlers map[domain.CommandType]handlers.HandlerFunc
	ctx      handlers.Context
}

func NewReducer(seed int64) *Reducer {
	r := &Reducer{
		handlers: make(map[domain.CommandType]handlers.HandlerFunc),
		ctx: handlers.Context{
			Rng: rand.New(rand.NewSource(seed)),
			Log: logger.For("engine"),
		},
	}
	r.registerHandlers()
	return r
}

func (r *Reducer) registerHandlers() {
	r.handlers[domain.CommandAdvanceBullets] = actions.HandleAdvanceBullets
	r.handlers[domain.CommandAdvanceSnipes] = actions.HandleAdvanceSnipes
	r.handlers[domain.CommandMoveHero] = actions.HandleMoveHero
	r.handlers[domain.CommandHeroShoot] = actions.HandleHeroShoot
	r.handlers[domain.CommandChangeSetting] = actions.HandleChangeSetting
	r.handlers[domain.CommandCreateWalls] = actions.HandleCreateWalls
}

// Next применяет команду к снимку w. Неизвестная команда возвращает w без изменений.
func (r *Reducer) Next(w domain.World, cmd domain.Command) domain.World {
	handler, ok := r.handlers[cmd.Type]
	if !ok {
		r.ctx.Log.WithFields(logrus.Fields{
			"command": cmd.Type,
		}).Debug("No handler for command, state unchanged")
		return w
	}
	return handler(r.ctx, w, cmd)
}
