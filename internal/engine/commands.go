package engine

import (
	"errors"
	"fmt"

	"snipes-server/internal/domain"
	"snipes-server/internal/engine/handlers"
	"snipes-server/pkg/api"
)

// ErrUnknownCommand - клиент прислал action, которого нет в протоколе.
var ErrUnknownCommand = errors.New("unknown command")

// decoders собирает доменную команду из клиентского JSON.
var decoders = map[domain.CommandType]handlers.DecodeFunc{
	domain.CommandAdvanceBullets: handlers.WithEmptyPayload(domain.AdvanceBullets),
	domain.CommandAdvanceSnipes:  handlers.WithEmptyPayload(domain.AdvanceSnipes),
	domain.CommandCreateWalls:    handlers.WithEmptyPayload(domain.CreateWalls),
	domain.CommandMoveHero:       handlers.WithPayload(directionCommand(domain.MoveHero)),
	domain.CommandHeroShoot:      handlers.WithPayload(directionCommand(domain.HeroShoot)),
	domain.CommandChangeSetting:  handlers.WithPayload(settingCommand),
}

// ParseCommand проверяет команду клиента на границе.
// Внутрь движка попадают только команды с известным направлением и ключом настройки.
func ParseCommand(c api.ClientCommand) (domain.Command, error) {
	cmdType := domain.ParseCommandType(c.Action)
	decode, ok := decoders[cmdType]
	if !ok {
		return domain.Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Action)
	}

	cmd, err := decode(c.Payload)
	if err != nil {
		return domain.Command{}, fmt.Errorf("%s: %w", cmdType, err)
	}
	return cmd, nil
}

func directionCommand(build func(domain.Direction) domain.Command) handlers.TypedDecodeFunc[api.DirectionPayload] {
	return func(p api.DirectionPayload) (domain.Command, error) {
		d, err := domain.ParseDirection(p.Dir)
		if err != nil {
			return domain.Command{}, err
		}
		return build(d), nil
	}
}

func settingCommand(p api.SettingPayload) (domain.Command, error) {
	key, err := domain.ParseSettingKey(p.Key)
	if err != nil {
		return domain.Command{}, err
	}
	return domain.ChangeSetting(key, p.Value), nil
}
