package arena

import (
	"snipes-server/internal/domain"
	"snipes-server/internal/systems"
)

// Layout - набор стен уровня: простые отрезки плюс составные фигуры.
type Layout struct {
	Walls  []domain.Wall
	Shapes []systems.Shape
}

// Segments разворачивает фигуры в отрезки (для отрисовки).
func (l Layout) Segments() []domain.Wall {
	out := make([]domain.Wall, 0, len(l.Walls)+3*len(l.Shapes))
	out = append(out, l.Walls...)
	for _, s := range l.Shapes {
		out = append(out, s.Segments()...)
	}
	return out
}

// Rasterize строит поле препятствий из той же раскладки.
func (l Layout) Rasterize() []domain.Point {
	return systems.BuildObstacleField(l.Walls, l.Shapes...)
}

// LayoutBuilder предоставляет fluent API для сборки раскладки стен
type LayoutBuilder struct {
	width, height float64
	walls         []domain.Wall
	shapes        []systems.Shape
}

// NewLayoutBuilder начинает раскладку для арены заданного размера.
func NewLayoutBuilder(width, height float64) *LayoutBuilder {
	return &LayoutBuilder{width: width, height: height}
}

// WithBorder добавляет 4 отрезка по краю арены.
func (b *LayoutBuilder) WithBorder() *LayoutBuilder {
	b.walls = append(b.walls,
		domain.Wall{X1: 0, Y1: 0, X2: b.width, Y2: 0},
		domain.Wall{X1: b.width, Y1: 0, X2: b.width, Y2: b.height},
		domain.Wall{X1: 0, Y1: b.height, X2: b.width, Y2: b.height},
		domain.Wall{X1: 0, Y1: 0, X2: 0, Y2: b.height},
	)
	return b
}

func (b *LayoutBuilder) AddWall(x1, y1, x2, y2 float64) *LayoutBuilder {
	b.walls = append(b.walls, domain.Wall{X1: x1, Y1: y1, X2: x2, Y2: y2})
	return b
}

func (b *LayoutBuilder) AddShape(s systems.Shape) *LayoutBuilder {
	b.shapes = append(b.shapes, s)
	return b
}

// Build возвращает раскладку. Билдер можно продолжать использовать: срезы копируются.
func (b *LayoutBuilder) Build() Layout {
	return Layout{
		Walls:  append([]domain.Wall(nil), b.walls...),
		Shapes: append([]systems.Shape(nil), b.shapes...),
	}
}

// DefaultLayout - пресет уровня: рамка арены, две внутренние стены и U-образный карман.
func DefaultLayout() Layout {
	return NewLayoutBuilder(domain.ArenaWidth, domain.ArenaHeight).
		WithBorder().
		AddWall(0, 100, 500, 100).
		AddWall(200, 100, 200, 500).
		AddShape(systems.UShape{Left: 500, Top: 250, Width: 80, Depth: 80}).
		Build()
}

// BuildDefaultWalls возвращает стены пресета и их растеризацию.
// Оба результата строятся из одной раскладки, поэтому всегда согласованы.
func BuildDefaultWalls() ([]domain.Wall, []domain.Point) {
	l := DefaultLayout()
	return l.Segments(), l.Rasterize()
}
