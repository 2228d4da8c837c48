package core

// BlankSymbol is the symbol of an empty cell.
const BlankSymbol = " "

// Cell is one character slot of the grid: a position, the displayed
// symbol and its style. Symbol holds exactly one grapheme cluster, so a
// combining sequence occupies a single cell. Cells compare with ==.
type Cell struct {
	Position Position
	Symbol   string
	Style    Style
}

// NewCell creates a Cell at the given column and row.
func NewCell(col, row int, symbol string, style Style) Cell {
	return Cell{
		Position: NewPosition(col, row),
		Symbol:   symbol,
		Style:    style,
	}
}

// EmptyCell creates a blank default-styled Cell at the given position.
func EmptyCell(col, row int) Cell {
	return NewCell(col, row, BlankSymbol, DefaultStyle())
}

// Reset blanks the cell's symbol. Position and style are kept; erasing
// content is not erasing formatting, the next write supplies the style.
func (c *Cell) Reset() {
	c.Symbol = BlankSymbol
}

// IsBlank reports whether the cell shows an empty space.
func (c Cell) IsBlank() bool {
	return c.Symbol == BlankSymbol
}
