package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию,
// поэтому пакеты можно использовать и без явной инициализации (например, в тестах).
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте бинарника (cmd/*) и в TestMain пакетов, которые логируют.
//
//	LOG_LEVEL  - trace|debug|info|warn|error (по умолчанию info)
//	LOG_FORMAT - json|text (по умолчанию text)
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure применяет уровень, формат и вывод. Неизвестный уровень сбрасывается в info.
func Configure(levelName, format string, out io.Writer) {
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// For возвращает логгер с полем component, как принято во всех системах.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
