package agent

import (
	"context"
	"encoding/json"
	"math/rand"

	"snipes-server/internal/domain"
	"snipes-server/internal/engine"
	"snipes-server/pkg/api"
	"snipes-server/pkg/logger"
	"snipes-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он подписывается на хаб так же, как вебсокет-клиент, получает снимки
// и отправляет команды через ту же границу (ClientCommand -> ParseCommand -> Submit).
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждый НОВЫЙ тик вызывается makeMove (снимки от собственных команд пропускаются).
type Bot struct {
	SessionID string
	Service   *engine.GameService
	Inbox     chan api.ServerResponse

	pilot    *Pilot
	lastTick int
	log      *logrus.Entry
}

func NewBot(service *engine.GameService, seed int64) *Bot {
	id := "bot_" + utils.GenerateID()
	log := logger.For("bot").WithField("session", id)
	log.Info("Creating autopilot agent")

	return &Bot{
		SessionID: id,
		Service:   service,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox:    service.Hub.Register(id),
		pilot:    NewPilot(rand.New(rand.NewSource(seed))),
		lastTick: -1,
		log:      log,
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.SessionID)

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Agent shut down")
			return
		case event, ok := <-b.Inbox:
			if !ok {
				return
			}
			if event.Type != api.ResponseUpdate || event.Tick == b.lastTick {
				continue
			}
			b.lastTick = event.Tick
			if !b.makeMove(event) {
				b.log.Info("Hero is dead, agent stops")
				return
			}
		}
	}
}

// makeMove - это мозг бота. false, если героя больше нет.
func (b *Bot) makeMove(state api.ServerResponse) bool {
	cmd, ok := b.pilot.Decide(localWorld(state))
	if !ok {
		return false
	}

	// Пилот отдает только MoveHero и HeroShoot, обе с направлением
	b.sendCommand(cmd.Type, api.DirectionPayload{Dir: cmd.Dir.String()})
	return true
}

// localWorld восстанавливает доменный мир из DTO. Стены пилоту не нужны.
func localWorld(state api.ServerResponse) domain.World {
	w := domain.World{MoveCounter: state.Tick}
	if state.Hero != nil {
		w.Hero = fromView(*state.Hero)
	}
	for _, v := range state.Snipes {
		w.Snipes = append(w.Snipes, fromView(v))
	}
	return w
}

func fromView(v api.UnitView) *domain.Unit {
	dir, _ := domain.ParseDirection(v.Dir)
	return &domain.Unit{ID: v.ID, X: v.X, Y: v.Y, Dir: dir}
}

// --- Хелперы для отправки команд на сервер ---

func (b *Bot) sendCommand(action domain.CommandType, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		b.log.WithError(err).Error("Error marshalling payload")
		return
	}

	cmd, err := engine.ParseCommand(api.ClientCommand{
		Action:  action.String(),
		Payload: payloadBytes,
	})
	if err != nil {
		b.log.WithError(err).Warn("Command rejected")
		return
	}

	if err := b.Service.Submit(cmd); err != nil {
		b.log.WithError(err).Debug("Command dropped")
	}
}
