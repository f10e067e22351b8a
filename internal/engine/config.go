package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"snipes-server/internal/domain"

	"github.com/joho/godotenv"
)

// Переменные окружения движка
const (
	EnvSeed      = "SNIPES_SEED"
	EnvTickMs    = "SNIPES_TICK_MS"
	EnvRicochet  = "SNIPES_RICOCHET"
	EnvMayShoot  = "SNIPES_MAY_SHOOT"
	EnvQueueSize = "SNIPES_QUEUE_SIZE"
)

// DefaultQueueSize - емкость очереди входящих команд.
const DefaultQueueSize = 100

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все случайные направления снайпов.
	Seed         int64
	TickInterval time.Duration
	Settings     domain.Settings
	QueueSize    int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		TickInterval: domain.TickInterval,
		Settings:     domain.DefaultSettings(),
		QueueSize:    DefaultQueueSize,
	}
}

// LoadConfig подгружает .env (если он есть) и накладывает переменные окружения на NewConfig.
// Отсутствующий .env - не ошибка, кривое значение переменной - ошибка.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := NewConfig()

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := os.LookupEnv(EnvTickMs); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTickMs, err)
		}
		if ms <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %d", EnvTickMs, ms)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v, ok := os.LookupEnv(EnvRicochet); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRicochet, err)
		}
		cfg.Settings.Ricochet = b
	}

	if v, ok := os.LookupEnv(EnvMayShoot); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMayShoot, err)
		}
		cfg.Settings.SnipesMayShoot = b
	}

	if v, ok := os.LookupEnv(EnvQueueSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvQueueSize, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %d", EnvQueueSize, n)
		}
		cfg.QueueSize = n
	}

	return cfg, nil
}
