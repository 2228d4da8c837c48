// Package core provides the shared grid value types for the renderer
// subsystem: positions, rectangles, colors, styles and cells. These are
// plain comparable values shared by the frame buffer, the viewport and
// the terminal backend.
package core

// Position is a location on the character grid, column first.
type Position struct {
	Col int
	Row int
}

// NewPosition creates a Position.
func NewPosition(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Add returns a new position offset by the given deltas.
func (p Position) Add(dCol, dRow int) Position {
	return Position{Col: p.Col + dCol, Row: p.Row + dRow}
}

// Rect is a rectangular region of the grid. The zero value is an empty
// rectangle anchored at the origin.
type Rect struct {
	Width    int
	Height   int
	Position Position
}

// NewRect creates a Rect anchored at the origin.
func NewRect(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// PositionedRect creates a Rect anchored at the given column and row.
func PositionedRect(width, height, col, row int) Rect {
	return Rect{
		Width:    width,
		Height:   height,
		Position: NewPosition(col, row),
	}
}

// Area returns the number of cells covered by the Rect.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Left returns the leftmost column of the Rect.
func (r Rect) Left() int {
	return r.Position.Col
}

// Right returns the column one past the rightmost column of the Rect.
func (r Rect) Right() int {
	return r.Position.Col + r.Width
}

// Top returns the topmost row of the Rect.
func (r Rect) Top() int {
	return r.Position.Row
}

// Bottom returns the row one past the bottommost row of the Rect.
func (r Rect) Bottom() int {
	return r.Position.Row + r.Height
}

// Contains reports whether the given position lies within the Rect,
// taking the Rect's own position into account.
func (r Rect) Contains(p Position) bool {
	return p.Col >= r.Left() && p.Col < r.Right() &&
		p.Row >= r.Top() && p.Row < r.Bottom()
}
