package systems

import "snipes-server/internal/domain"

// ClampToArena прижимает точку к границам арены.
func ClampToArena(p domain.Point) domain.Point {
	return domain.Point{
		X: clamp(p.X, 0, domain.ArenaWidth),
		Y: clamp(p.Y, 0, domain.ArenaHeight),
	}
}

// HitsBorder - true, если точка на границе арены или за ней.
func HitsBorder(p domain.Point) bool {
	c := ClampToArena(p)
	return c.X == 0 || c.X == domain.ArenaWidth || c.Y == 0 || c.Y == domain.ArenaHeight
}

// CorrectBeyondBorder не дает юниту пересечь границу арены: юнит возвращается внутрь
// и "отскакивает" (направление отражается через OppositeDirection).
// Сквозного прохода через край, как в pacman, нет.
//
// Отражение считается по точке ДО коррекции, вторая ось отражает уже отраженное направление.
func CorrectBeyondBorder(u domain.Unit, size float64) domain.Unit {
	prev := domain.Point{X: u.X, Y: u.Y}

	if u.X >= domain.ArenaWidth-size/2 {
		u.X = domain.ArenaWidth - size
		u.Dir = OppositeDirection(u.Dir, prev)
	} else if u.X <= 0 {
		u.X = size
		u.Dir = OppositeDirection(u.Dir, prev)
	}

	if u.Y >= domain.ArenaHeight-size/2 {
		u.Y = domain.ArenaHeight - size
		u.Dir = OppositeDirection(u.Dir, prev)
	} else if u.Y <= 0 {
		u.Y = size
		u.Dir = OppositeDirection(u.Dir, prev)
	}

	return u
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
