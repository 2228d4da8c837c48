// Package frame provides the frame buffer: a full grid snapshot of cells
// that drawing is staged into. A buffer can be diffed against another
// snapshot of the same area so that only changed cells reach the
// terminal.
package frame

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/vire-editor/vire/internal/renderer/core"
)

// OutOfBoundsError is returned when a cell outside the buffer's area is
// addressed. This is a programming-error class: clamping instead would
// corrupt the diff invariant, so the bad access is surfaced.
type OutOfBoundsError struct {
	Position core.Position
	Area     core.Rect
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %+v out of bounds for area %dx%d at %+v",
		e.Position, e.Area.Width, e.Area.Height, e.Area.Position)
}

// Buffer is a mapping of cells for a given area, stored row-major. Every
// cell's position is determined by its linear index. Buffers are never
// resized; a terminal resize requires reconstruction.
type Buffer struct {
	area  core.Rect
	cells []core.Cell
}

// Empty creates a Buffer with every cell blanked.
func Empty(area core.Rect) *Buffer {
	return Filled(area, core.BlankSymbol)
}

// Filled creates a Buffer with every cell set to the given symbol and
// the default style.
func Filled(area core.Rect, symbol string) *Buffer {
	cells := make([]core.Cell, 0, area.Area())

	for row := 0; row < area.Height; row++ {
		for col := 0; col < area.Width; col++ {
			cells = append(cells, core.NewCell(
				area.Left()+col,
				area.Top()+row,
				symbol,
				core.DefaultStyle(),
			))
		}
	}

	return &Buffer{area: area, cells: cells}
}

// Area returns the region covered by the Buffer.
func (b *Buffer) Area() core.Rect {
	return b.area
}

// Cells returns the backing cell slice, row-major.
func (b *Buffer) Cells() []core.Cell {
	return b.cells
}

// CellAt returns a copy of the cell at the given position.
func (b *Buffer) CellAt(p core.Position) (core.Cell, error) {
	idx, err := b.indexOf(p)
	if err != nil {
		return core.Cell{}, err
	}
	return b.cells[idx], nil
}

// indexOf maps a position to its linear cell index.
func (b *Buffer) indexOf(p core.Position) (int, error) {
	if !b.area.Contains(p) {
		return 0, &OutOfBoundsError{Position: p, Area: b.area}
	}
	return (p.Row-b.area.Top())*b.area.Width + (p.Col - b.area.Left()), nil
}

// WriteLine overwrites one row of the Buffer with the given text and
// style, starting at column 0 of the row. The text is split into one
// grapheme cluster per cell, so a combining sequence lands in a single
// cell. Text beyond the row width is truncated; if the text is shorter
// than the row, the remaining cells are blanked. Writing an empty string
// blanks the whole row.
func (b *Buffer) WriteLine(lineNumber int, text string, style core.Style) error {
	start, err := b.indexOf(core.NewPosition(b.area.Left(), b.area.Top()+lineNumber))
	if err != nil {
		return err
	}

	written := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() && written < b.area.Width {
		idx := start + written
		b.cells[idx] = core.NewCell(
			b.cells[idx].Position.Col,
			b.cells[idx].Position.Row,
			graphemes.Str(),
			style,
		)
		written++
	}

	for i := start + written; i < start+b.area.Width; i++ {
		b.cells[i] = core.EmptyCell(b.cells[i].Position.Col, b.cells[i].Position.Row)
	}

	return nil
}

// WriteSegment overwrites part of one row, starting at the given
// column. Unlike WriteLine it leaves the rest of the row untouched, so
// a row can be composed of differently styled segments. Text running
// past the row width is truncated.
func (b *Buffer) WriteSegment(lineNumber, startCol int, text string, style core.Style) error {
	start, err := b.indexOf(core.NewPosition(b.area.Left()+startCol, b.area.Top()+lineNumber))
	if err != nil {
		return err
	}

	written := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() && startCol+written < b.area.Width {
		idx := start + written
		b.cells[idx] = core.NewCell(
			b.cells[idx].Position.Col,
			b.cells[idx].Position.Row,
			graphemes.Str(),
			style,
		)
		written++
	}

	return nil
}

// Reset blanks every cell's symbol. Styles and positions are preserved;
// the next WriteLine supplies fresh styles, so reset means "erase
// content", not "erase formatting".
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// Diff compares the receiver (the previously rendered snapshot) with
// next and returns pointers to the cells of next that differ, in
// ascending index order. Row-major ordering lets the backend minimize
// cursor seeks. Both buffers must cover the same area; this is a caller
// precondition, the viewport always diffs the two buffers of one
// allocation.
func (b *Buffer) Diff(next *Buffer) []*core.Cell {
	var changes []*core.Cell

	for i := range next.cells {
		if b.cells[i] != next.cells[i] {
			changes = append(changes, &next.cells[i])
		}
	}

	return changes
}
