package handlers

import (
	"math/rand"

	"snipes-server/internal/domain"

	"github.com/sirupsen/logrus"
)

// Context передает хендлеру окружение тика.
// Состояние мира сюда НЕ кладем: мир приходит аргументом и возвращается новым снимком.
type Context struct {
	Rng *rand.Rand    // Сидированный генератор движка (направления снайпов)
	Log *logrus.Entry // Логгер с полем component
}

// HandlerFunc - это контракт для любой команды (MOVE_HERO, ADVANCE_BULLETS, etc).
// Хендлер получает снимок w и обязан вернуть новый снимок, не меняя w.
type HandlerFunc func(ctx Context, w domain.World, cmd domain.Command) domain.World
