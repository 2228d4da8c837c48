package backend

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vire-editor/vire/internal/input/key"
	"github.com/vire-editor/vire/internal/renderer/core"
)

// ErrClosed is returned by PollKey once the terminal has been released.
var ErrClosed = errors.New("terminal event source closed")

// Terminal implements Canvas and KeySource on top of a tcell screen.
// Init acquires the terminal (raw mode, alternate screen) and Fini
// releases it; Fini must run on every exit path.
type Terminal struct {
	screen tcell.Screen

	mu     sync.Mutex
	closed bool
}

// NewTerminal creates a Terminal over a fresh tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating tcell screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode and enters the alternate screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	return nil
}

// Fini restores the terminal state. Safe to call more than once.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

func (t *Terminal) Clear() error {
	t.screen.Clear()
	return nil
}

func (t *Terminal) Draw(cells []*core.Cell) error {
	for _, cell := range cells {
		runes := []rune(cell.Symbol)
		if len(runes) == 0 {
			runes = []rune{' '}
		}
		t.screen.SetContent(
			cell.Position.Col,
			cell.Position.Row,
			runes[0],
			runes[1:],
			convertStyle(cell.Style),
		)
	}
	return nil
}

func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) HideCursor() error {
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) ShowCursor() error {
	// tcell couples cursor visibility to positioning; PositionCursor
	// already made the cursor visible at its target.
	return nil
}

func (t *Terminal) PositionCursor(row, col int) error {
	t.screen.ShowCursor(col, row)
	return nil
}

func (t *Terminal) Size() (core.Rect, error) {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return core.Rect{}, fmt.Errorf("terminal reported unusable size %dx%d", width, height)
	}
	return core.NewRect(width, height), nil
}

// PollKey blocks until the next key press, skipping events the editor
// does not consume (mouse, resize, paste).
func (t *Terminal) PollKey() (key.Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, ErrClosed
		}

		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		return convertKey(keyEv), nil
	}
}

// convertKey maps a tcell key event onto the editor's closed key set.
func convertKey(ev *tcell.EventKey) key.Event {
	switch ev.Key() {
	case tcell.KeyEnter:
		return key.Special(key.KeyEnter)
	case tcell.KeyTab:
		return key.Special(key.KeyTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Special(key.KeyBackspace)
	case tcell.KeyEscape:
		return key.Special(key.KeyEscape)
	case tcell.KeyLeft:
		return key.Special(key.KeyLeft)
	case tcell.KeyRight:
		return key.Special(key.KeyRight)
	case tcell.KeyUp:
		return key.Special(key.KeyUp)
	case tcell.KeyDown:
		return key.Special(key.KeyDown)
	case tcell.KeyInsert:
		return key.Special(key.KeyInsert)
	case tcell.KeyDelete:
		return key.Special(key.KeyDelete)
	case tcell.KeyHome:
		return key.Special(key.KeyHome)
	case tcell.KeyEnd:
		return key.Special(key.KeyEnd)
	case tcell.KeyPgUp:
		return key.Special(key.KeyPageUp)
	case tcell.KeyPgDn:
		return key.Special(key.KeyPageDown)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return key.Ctrl(ev.Rune())
		}
		return key.Char(ev.Rune())
	default:
		// tcell reports Ctrl chords as dedicated key codes.
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			return key.Ctrl(rune('a' + ev.Key() - tcell.KeyCtrlA))
		}
		return key.Special(key.KeyUnknown)
	}
}

// convertStyle maps a core style onto tcell's style type.
func convertStyle(style core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(style.Foreground)).
		Background(convertColor(style.Background))
}

func convertColor(c core.Color) tcell.Color {
	switch c.Kind {
	case core.ColorKindNamed, core.ColorKindIndexed:
		return tcell.PaletteColor(int(c.Index))
	case core.ColorKindRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
