package core

import "fmt"

// ColorKind discriminates the closed set of color representations.
type ColorKind uint8

const (
	// ColorKindReset selects the terminal's default color.
	ColorKindReset ColorKind = iota

	// ColorKindNamed selects one of the 16 base terminal colors.
	ColorKindNamed

	// ColorKindIndexed selects a color from the 256-entry palette.
	ColorKindIndexed

	// ColorKindRGB selects a 24-bit true color.
	ColorKindRGB
)

// Color is one color of a cell's style. It is a tagged value: Kind
// selects which of the remaining fields are meaningful. Colors compare
// with ==.
type Color struct {
	// Kind selects the representation.
	Kind ColorKind

	// Index is the base color id for ColorKindNamed (0-15) or the
	// palette index for ColorKindIndexed.
	Index uint8

	// R, G, B are the channel values for ColorKindRGB.
	R, G, B uint8
}

// ColorReset is the terminal's default color.
var ColorReset = Color{Kind: ColorKindReset}

// The 16 base terminal colors.
var (
	ColorBlack        = named(0)
	ColorRed          = named(1)
	ColorGreen        = named(2)
	ColorYellow       = named(3)
	ColorBlue         = named(4)
	ColorMagenta      = named(5)
	ColorCyan         = named(6)
	ColorGray         = named(7)
	ColorDarkGray     = named(8)
	ColorLightRed     = named(9)
	ColorLightGreen   = named(10)
	ColorLightYellow  = named(11)
	ColorLightBlue    = named(12)
	ColorLightMagenta = named(13)
	ColorLightCyan    = named(14)
	ColorWhite        = named(15)
)

func named(index uint8) Color {
	return Color{Kind: ColorKindNamed, Index: index}
}

// IndexedColor creates a color referencing the 256-entry palette.
func IndexedColor(index uint8) Color {
	return Color{Kind: ColorKindIndexed, Index: index}
}

// RGBColor creates a 24-bit true color.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorKindRGB, R: r, G: g, B: b}
}

// IsReset reports whether this is the terminal default color.
func (c Color) IsReset() bool {
	return c.Kind == ColorKindReset
}

// String returns a human-readable form, mainly for test failures.
func (c Color) String() string {
	switch c.Kind {
	case ColorKindReset:
		return "reset"
	case ColorKindNamed:
		return fmt.Sprintf("named(%d)", c.Index)
	case ColorKindIndexed:
		return fmt.Sprintf("idx(%d)", c.Index)
	case ColorKindRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	default:
		return "unknown"
	}
}

// Style is the foreground and background color pair of a cell.
type Style struct {
	Foreground Color
	Background Color
}

// NewStyle creates a Style from a foreground and a background color.
func NewStyle(foreground, background Color) Style {
	return Style{Foreground: foreground, Background: background}
}

// DefaultStyle returns the terminal default style, Reset on both axes.
func DefaultStyle() Style {
	return Style{Foreground: ColorReset, Background: ColorReset}
}

// Invert returns the style with foreground and background swapped.
func (s Style) Invert() Style {
	return Style{Foreground: s.Background, Background: s.Foreground}
}

// IsDefault reports whether both colors are the terminal default.
func (s Style) IsDefault() bool {
	return s.Foreground.IsReset() && s.Background.IsReset()
}
