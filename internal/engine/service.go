package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"snipes-server/internal/domain"
	"snipes-server/internal/network"
	"snipes-server/pkg/arena"
	"snipes-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull = errors.New("command queue is full")
	ErrStopped   = errors.New("game service stopped")
)

// GameService владеет миром. Команды применяет ровно одна горутина (Run),
// читатели получают неизменяемые снимки через Snapshot или Hub.
type GameService struct {
	Hub *network.Broadcaster

	cfg      Config
	reducer  *Reducer
	commands chan domain.Command
	state    atomic.Pointer[domain.World]
	stopped  atomic.Bool
	log      *logrus.Entry
}

// NewService собирает стартовый мир и ставит стены. hub может быть nil (headless).
func NewService(cfg Config, hub *network.Broadcaster) *GameService {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = domain.TickInterval
	}

	s := &GameService{
		Hub:      hub,
		cfg:      cfg,
		reducer:  NewReducer(cfg.Seed),
		commands: make(chan domain.Command, cfg.QueueSize),
		log:      logger.For("game_service"),
	}

	w := s.reducer.Next(arena.NewWorld(cfg.Settings), domain.CreateWalls())
	s.state.Store(&w)

	s.log.WithFields(logrus.Fields{
		"seed":        cfg.Seed,
		"tick":        cfg.TickInterval,
		"snipes":      len(w.Snipes),
		"wall_points": len(w.WallPoints),
	}).Info("World created")
	return s
}

// --- GAME LOOP ---

// Run крутит таймер: каждый тик AdvanceBullets, затем AdvanceSnipes.
// Между тиками применяются команды из очереди. Возвращается при отмене ctx.
func (s *GameService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	defer s.stopped.Store(true)

	s.log.Info("Game loop started")
	s.publishUpdate(s.Snapshot())

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Game loop stopped")
			return

		case <-ticker.C:
			s.Tick()

		case cmd := <-s.commands:
			s.Step(cmd)
		}
	}
}

// Submit ставит команду в очередь, не блокируясь.
func (s *GameService) Submit(cmd domain.Command) error {
	if s.stopped.Load() {
		return ErrStopped
	}
	select {
	case s.commands <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// Snapshot возвращает последний опубликованный снимок.
func (s *GameService) Snapshot() domain.World {
	return *s.state.Load()
}

// Tick - один удар таймера.
func (s *GameService) Tick() domain.World {
	s.Step(domain.AdvanceBullets())
	return s.Step(domain.AdvanceSnipes())
}

// Step синхронно применяет команду и публикует результат.
// Вызывается только из горутины Run или когда Run не запущен (тесты, headless).
func (s *GameService) Step(cmd domain.Command) domain.World {
	prev := s.Snapshot()
	next := s.reducer.Next(prev, cmd)
	s.state.Store(&next)

	if prev.HeroAlive() && !next.HeroAlive() {
		s.log.WithField("tick", next.MoveCounter).Info("Game over: hero is dead")
	}

	s.publishUpdate(next)
	return next
}

// publishUpdate рассылает снимок всем подписчикам
func (s *GameService) publishUpdate(w domain.World) {
	if s.Hub == nil || s.Hub.SubscriberCount() == 0 {
		return
	}
	s.Hub.Broadcast(BuildState(w))
}
