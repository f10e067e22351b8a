package domain

// Point - координата на плоскости арены. Ось Y направлена вниз (экранные координаты).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shift возвращает новую точку со смещением (текущая не меняется).
func (p Point) Shift(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Unit - общий вид для героя, снайпа и пули.
//
// Отсутствие юнита (смерть, вылет за арену) выражается nil-указателем в слоте.
// Юниты, попавшие в опубликованный World, больше не изменяются:
// обработчики всегда создают новые значения (copy-on-write).
type Unit struct {
	ID  string    `json:"id"`
	X   float64   `json:"x"`
	Y   float64   `json:"y"`
	Dir Direction `json:"dir"`
}

// Point возвращает позицию юнита. Для nil-юнита возвращает nil,
// чтобы "нет позиции" протекало дальше через геометрию без проверок.
func (u *Unit) Point() *Point {
	if u == nil {
		return nil
	}
	return &Point{X: u.X, Y: u.Y}
}

// At возвращает копию юнита, перенесенную в точку p.
func (u Unit) At(p Point) *Unit {
	u.X, u.Y = p.X, p.Y
	return &u
}

// Facing возвращает копию юнита с новым направлением.
func (u Unit) Facing(d Direction) *Unit {
	u.Dir = d
	return &u
}

// Wall - статичное препятствие: строго горизонтальный или вертикальный отрезок.
type Wall struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (w Wall) IsHorizontal() bool { return w.Y1 == w.Y2 }

func (w Wall) IsVertical() bool { return w.X1 == w.X2 }
