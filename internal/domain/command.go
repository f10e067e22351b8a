package domain

import "strings"

// CommandType - внутренний числовой идентификатор команды движка.
type CommandType uint8

const (
	CommandUnknown CommandType = iota
	CommandAdvanceBullets
	CommandAdvanceSnipes
	CommandMoveHero
	CommandHeroShoot
	CommandChangeSetting
	CommandCreateWalls
)

// Маппинг для конвертации JSON -> Domain.
// Принимаем как короткие имена, так и имена с суффиксом _CMD.
var commandStringToType = map[string]CommandType{
	"MOVE_BULLETS":   CommandAdvanceBullets,
	"MOVE_SNIPES":    CommandAdvanceSnipes,
	"MOVE_HERO":      CommandMoveHero,
	"HERO_SHOOT":     CommandHeroShoot,
	"CHANGE_SETTING": CommandChangeSetting,
	"CREATE_WALLS":   CommandCreateWalls,

	"ADVANCE_BULLETS": CommandAdvanceBullets,
	"ADVANCE_SNIPES":  CommandAdvanceSnipes,
}

// Маппинг для логов Domain -> String
var commandTypeToString = map[CommandType]string{
	CommandAdvanceBullets: "MOVE_BULLETS",
	CommandAdvanceSnipes:  "MOVE_SNIPES",
	CommandMoveHero:       "MOVE_HERO",
	CommandHeroShoot:      "HERO_SHOOT",
	CommandChangeSetting:  "CHANGE_SETTING",
	CommandCreateWalls:    "CREATE_WALLS",
}

// ParseCommandType конвертирует строку из JSON в CommandType
func ParseCommandType(s string) CommandType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "_CMD")
	if val, ok := commandStringToType[upper]; ok {
		return val
	}
	return CommandUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c CommandType) String() string {
	if val, ok := commandTypeToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// Command - закрытый вариант команды. Какие поля значимы, определяет Type:
//
//	MoveHero, HeroShoot -> Dir
//	ChangeSetting       -> Setting, Value
type Command struct {
	Type    CommandType
	Dir     Direction
	Setting SettingKey
	Value   bool
}

func AdvanceBullets() Command { return Command{Type: CommandAdvanceBullets} }

func AdvanceSnipes() Command { return Command{Type: CommandAdvanceSnipes} }

func MoveHero(d Direction) Command { return Command{Type: CommandMoveHero, Dir: d} }

func HeroShoot(d Direction) Command { return Command{Type: CommandHeroShoot, Dir: d} }

func ChangeSetting(key SettingKey, value bool) Command {
	return Command{Type: CommandChangeSetting, Setting: key, Value: value}
}

func CreateWalls() Command { return Command{Type: CommandCreateWalls} }
