package domain

// World - полный снимок состояния игры.
//
// Снимок неизменяем после публикации: движок возвращает новый World на каждую команду,
// старые снимки остаются валидными для читателей.
// Инвариант: WallPoints всегда является растеризацией Walls, оба поля меняются только вместе.
type World struct {
	// Hero == nil означает смерть героя (терминальное состояние).
	Hero *Unit `json:"hero"`

	// Слоты снайпов и пуль. Погибшие остаются nil-дырками на своих местах,
	// чтобы индекс слота не менялся между тиками.
	Snipes  []*Unit `json:"snipes"`
	Bullets []*Unit `json:"bullets"`

	Walls      []Wall  `json:"walls"`
	WallPoints []Point `json:"-"` // Тысячи точек, клиенту не нужны

	Settings    Settings `json:"settings"`
	MoveCounter int      `json:"moveCounter"`
}

// Clone копирует срезы слотов, чтобы новый снимок не делил backing array со старым.
// Сами юниты не копируются: они неизменяемы.
// Walls и WallPoints разделяются: их заменяют только целиком (CreateWalls).
func (w World) Clone() World {
	next := w
	next.Snipes = cloneSlots(w.Snipes)
	next.Bullets = cloneSlots(w.Bullets)
	return next
}

func cloneSlots(src []*Unit) []*Unit {
	if src == nil {
		return nil
	}
	dst := make([]*Unit, len(src))
	copy(dst, src)
	return dst
}

// HeroAlive - жив ли герой.
func (w World) HeroAlive() bool {
	return w.Hero != nil
}

// LiveSnipes возвращает живых снайпов (без дырок), порядок слотов сохраняется.
func (w World) LiveSnipes() []*Unit {
	return live(w.Snipes)
}

// LiveBullets возвращает летящие пули (без дырок), порядок слотов сохраняется.
func (w World) LiveBullets() []*Unit {
	return live(w.Bullets)
}

func live(slots []*Unit) []*Unit {
	out := make([]*Unit, 0, len(slots))
	for _, u := range slots {
		if u != nil {
			out = append(out, u)
		}
	}
	return out
}

// PlaceInSlot кладет u в первую nil-дырку или дописывает в конец.
// Так срез пуль не растет за пределы числа одновременно летящих.
// slots уже должен принадлежать новому снимку (после Clone).
func PlaceInSlot(slots []*Unit, u *Unit) []*Unit {
	if u == nil {
		return slots
	}
	for i, s := range slots {
		if s == nil {
			slots[i] = u
			return slots
		}
	}
	return append(slots, u)
}
