package systems

import "snipes-server/internal/domain"

// Overlaps проверяет пересечение двух квадратов со стороной size, привязанных к a и b (AABB).
// Отсутствие (nil) никогда не сталкивается.
func Overlaps(a, b *domain.Point, size float64) bool {
	if a == nil || b == nil {
		return false
	}
	separated := a.Y+size <= b.Y ||
		a.Y >= b.Y+size ||
		a.X+size <= b.X ||
		a.X >= b.X+size
	return !separated
}

// OverlapsAnyUnit - true, если subject пересекается хотя бы с одним живым юнитом из слотов.
func OverlapsAnyUnit(units []*domain.Unit, subject *domain.Point, size float64) bool {
	if subject == nil {
		return false
	}
	for _, u := range units {
		if u == nil {
			continue
		}
		if Overlaps(u.Point(), subject, size) {
			return true
		}
	}
	return false
}

// OverlapsAnyPoint - то же для поля препятствий (растеризованных стен).
// Линейный проход: поле - плоский срез точек.
func OverlapsAnyPoint(points []domain.Point, subject *domain.Point, size float64) bool {
	if subject == nil {
		return false
	}
	for i := range points {
		if Overlaps(&points[i], subject, size) {
			return true
		}
	}
	return false
}

// ReflectOffObstacles подбирает направление отскока от поля препятствий для юнита в точке from.
// Каждая ось шага проверяется отдельно: ось, шаг по которой упирается в препятствие, отражается.
// Если ни одна ось в отдельности не заблокирована (удар ровно в угол), отражаются обе.
func ReflectOffObstacles(d domain.Direction, from domain.Point, points []domain.Point, step, size float64) domain.Direction {
	dx, dy := StepVector(d)
	if dx == 0 && dy == 0 {
		return d
	}

	blockedX := dx != 0 && OverlapsAnyPoint(points, &domain.Point{X: from.X + dx*step, Y: from.Y}, size)
	blockedY := dy != 0 && OverlapsAnyPoint(points, &domain.Point{X: from.X, Y: from.Y + dy*step}, size)

	if !blockedX && !blockedY {
		return DirectionFromVector(-dx, -dy)
	}
	if blockedX {
		dx = -dx
	}
	if blockedY {
		dy = -dy
	}
	return DirectionFromVector(dx, dy)
}
