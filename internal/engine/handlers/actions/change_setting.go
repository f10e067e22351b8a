package actions

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"

	"github.com/sirupsen/logrus"
)

// HandleChangeSetting перезаписывает один флаг настроек.
// Неизвестный ключ сюда попадать не должен (его режет граница), но если попал - мир не меняется.
func HandleChangeSetting(ctx handlers.Context, w domain.World, cmd domain.Command) domain.World {
	if _, ok := w.Settings.Get(cmd.Setting); !ok {
		ctx.Log.WithField("setting", cmd.Setting).Warn("Unknown setting, ignored")
		return w
	}

	next := w.Clone()
	next.Settings = w.Settings.With(cmd.Setting, cmd.Value)

	ctx.Log.WithFields(logrus.Fields{
		"setting": cmd.Setting,
		"value":   cmd.Value,
	}).Info("Setting changed")
	return next
}
