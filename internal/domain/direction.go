package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDirection возвращается, если строку нельзя сопоставить ни с одним направлением.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction - одно из 8 направлений компаса.
// Нулевое значение DirectionNone означает "направление не задано".
type Direction uint8

const (
	DirectionNone Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections - все направления по часовой стрелке, начиная с севера.
// Порядок важен: RandomDirection выбирает по индексу в этом срезе.
var AllDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionToString = map[Direction]string{
	North:     "north",
	NorthEast: "north_east",
	East:      "east",
	SouthEast: "south_east",
	South:     "south",
	SouthWest: "south_west",
	West:      "west",
	NorthWest: "north_west",
}

// Маппинг для разбора ввода. Кроме канонических имен принимаем
// клавиши движения (up/right/down/left) и клавиши стрельбы (shootUp, ...).
var stringToDirection = map[string]Direction{
	"north":      North,
	"north_east": NorthEast,
	"east":       East,
	"south_east": SouthEast,
	"south":      South,
	"south_west": SouthWest,
	"west":       West,
	"north_west": NorthWest,

	"n": North, "ne": NorthEast, "e": East, "se": SouthEast,
	"s": South, "sw": SouthWest, "w": West, "nw": NorthWest,

	"up":    North,
	"right": East,
	"down":  South,
	"left":  West,

	"shootup":        North,
	"shootupright":   NorthEast,
	"shootright":     East,
	"shootdownright": SouthEast,
	"shootdown":      South,
	"shootdownleft":  SouthWest,
	"shootleft":      West,
	"shootupleft":    NorthWest,
}

// ParseDirection конвертирует строку из JSON в Direction (без учета регистра).
func ParseDirection(s string) (Direction, error) {
	if d, ok := stringToDirection[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return DirectionNone, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Valid сообщает, является ли значение одним из 8 направлений.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// IsDiagonal - true для NE, SE, SW, NW.
func (d Direction) IsDiagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// String реализует интерфейс Stringer (для логов)
func (d Direction) String() string {
	if s, ok := directionToString[d]; ok {
		return s
	}
	return "none"
}

// MarshalJSON пишет направление строкой, как его ждет фронтенд.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON принимает любое имя, которое понимает ParseDirection.
func (d *Direction) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("direction must be a string: %w", err)
	}
	if s == "" || s == "none" {
		*d = DirectionNone
		return nil
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
