package systems

import (
	"math"
	"math/rand"

	"snipes-server/internal/domain"
)

// stepVectors - единичный шаг для каждого направления.
// Диагональ двигает обе оси на полный шаг (без нормализации): так устроена сетка игры.
var stepVectors = map[domain.Direction][2]float64{
	domain.North:     {0, -1},
	domain.NorthEast: {1, -1},
	domain.East:      {1, 0},
	domain.SouthEast: {1, 1},
	domain.South:     {0, 1},
	domain.SouthWest: {-1, 1},
	domain.West:      {-1, 0},
	domain.NorthWest: {-1, -1},
}

// StepVector возвращает (dx, dy) для направления. Для неизвестного направления - (0, 0).
func StepVector(d domain.Direction) (float64, float64) {
	v := stepVectors[d]
	return v[0], v[1]
}

// NextPoint возвращает точку, сдвинутую на step в направлении d.
// nil на входе дает nil на выходе: у мертвого героя нет "следующей точки".
func NextPoint(d domain.Direction, p *domain.Point, step float64) *domain.Point {
	if p == nil {
		return nil
	}
	dx, dy := StepVector(d)
	next := p.Shift(dx*step, dy*step)
	return &next
}

// IsNorthSouthWall сообщает, лежит ли точка (после прижатия к арене) на западной или восточной границе.
func IsNorthSouthWall(p domain.Point) bool {
	clamped := ClampToArena(p)
	return clamped.X == 0 || clamped.X == domain.ArenaWidth
}

// OppositeDirection возвращает направление после отскока в точке contact.
//
// Осевые направления просто разворачиваются (N<->S, E<->W).
// Диагональ отражает только одну ось, и какую именно - зависит от стены:
// на западной/восточной границе меняется горизонтальная составляющая, в остальных случаях - вертикальная.
func OppositeDirection(d domain.Direction, contact domain.Point) domain.Direction {
	if !d.IsDiagonal() {
		switch d {
		case domain.North:
			return domain.South
		case domain.South:
			return domain.North
		case domain.East:
			return domain.West
		case domain.West:
			return domain.East
		}
		return d
	}

	northSouth := IsNorthSouthWall(contact)
	switch d {
	case domain.NorthEast:
		if northSouth {
			return domain.NorthWest
		}
		return domain.SouthEast
	case domain.SouthEast:
		if northSouth {
			return domain.SouthWest
		}
		return domain.NorthEast
	case domain.SouthWest:
		if northSouth {
			return domain.SouthEast
		}
		return domain.NorthWest
	case domain.NorthWest:
		if northSouth {
			return domain.NorthEast
		}
		return domain.SouthWest
	}
	return d
}

// Distance - евклидово расстояние, округленное до целого.
func Distance(a, b domain.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Round(math.Sqrt(dx*dx + dy*dy))
}

// RandomDirection выбирает одно из 8 направлений равновероятно.
// Генератор передается явно, чтобы симуляция воспроизводилась по сиду.
func RandomDirection(rng *rand.Rand) domain.Direction {
	return domain.AllDirections[rng.Intn(len(domain.AllDirections))]
}

// DirectionFromVector - обратная к StepVector. Для (0, 0) и прочих векторов - DirectionNone.
func DirectionFromVector(dx, dy float64) domain.Direction {
	for d, v := range stepVectors {
		if v[0] == dx && v[1] == dy {
			return d
		}
	}
	return domain.DirectionNone
}
