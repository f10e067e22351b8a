package systems

import (
	"math"

	"snipes-server/internal/domain"
	"snipes-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Shape - составная фигура из нескольких отрезков (пресеты уровня).
type Shape interface {
	Segments() []domain.Wall
}

// UShape - неполный прямоугольник, открытый сверху:
// две вертикальные стенки и дно.
type UShape struct {
	Left, Top    float64
	Width, Depth float64
}

// Segments реализует Shape.
func (u UShape) Segments() []domain.Wall {
	right := u.Left + u.Width
	bottom := u.Top + u.Depth
	return []domain.Wall{
		{X1: u.Left, Y1: u.Top, X2: u.Left, Y2: bottom},
		{X1: right, Y1: u.Top, X2: right, Y2: bottom},
		{X1: u.Left, Y1: bottom, X2: right, Y2: bottom},
	}
}

// RasterizeSegment превращает отрезок стены в набор точек с шагом 1 (концы включительно).
// Каждая точка - отдельное маленькое препятствие, поэтому коллизия юнит-стена
// считается тем же Overlaps, что и юнит-юнит.
//
// Диагональные стены не поддерживаются: для них возвращается nil.
func RasterizeSegment(w domain.Wall) []domain.Point {
	switch {
	case w.IsHorizontal():
		from, to := math.Min(w.X1, w.X2), math.Max(w.X1, w.X2)
		points := make([]domain.Point, 0, int(to-from)+1)
		for x := from; x <= to; x++ {
			points = append(points, domain.Point{X: x, Y: w.Y1})
		}
		return points

	case w.IsVertical():
		from, to := math.Min(w.Y1, w.Y2), math.Max(w.Y1, w.Y2)
		points := make([]domain.Point, 0, int(to-from)+1)
		for y := from; y <= to; y++ {
			points = append(points, domain.Point{X: w.X1, Y: y})
		}
		return points
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "walls_system",
		"wall":      w,
	}).Warn("Diagonal wall cannot be rasterized, skipping")
	return nil
}

// BuildObstacleField склеивает растеризацию всех стен и составных фигур в одно поле препятствий.
// Порядок точек детерминирован: сначала стены по порядку, затем фигуры.
func BuildObstacleField(walls []domain.Wall, shapes ...Shape) []domain.Point {
	var field []domain.Point
	for _, w := range walls {
		field = append(field, RasterizeSegment(w)...)
	}
	for _, s := range shapes {
		for _, w := range s.Segments() {
			field = append(field, RasterizeSegment(w)...)
		}
	}
	return field
}
