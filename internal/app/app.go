// Package app wires the editor together: configuration, logging, the
// document, the input engine, the event loop and the renderer, plus
// the main loop that connects them.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vire-editor/vire/internal/config"
	"github.com/vire-editor/vire/internal/document"
	"github.com/vire-editor/vire/internal/event"
	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/mode"
	"github.com/vire-editor/vire/internal/renderer/backend"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
	"github.com/vire-editor/vire/internal/renderer/viewport"
	"github.com/vire-editor/vire/internal/renderer/widget"
)

// chromeRows is how many rows at the bottom of the screen are taken
// by the status bar and the command line.
const chromeRows = 2

// Backend is the full terminal surface the editor runs on: a drawable
// canvas, a key source, and a lifecycle to release on shutdown.
type Backend interface {
	backend.Canvas
	backend.KeySource
	Fini()
}

// Options configures a new editor, typically from command line flags.
type Options struct {
	// ConfigPath locates the TOML config file; empty uses defaults.
	ConfigPath string
	// WatchConfig enables live reload of the config file.
	WatchConfig bool
	// LogLevel and LogFile override the config file values.
	LogLevel string
	LogFile  string
	// File is the document to open; empty starts a scratch buffer.
	File string
	// Version is shown on the welcome screen.
	Version string
}

// Editor owns all editor state and the main loop.
type Editor struct {
	opts    Options
	logger  *Logger
	backend Backend
	doc     *document.Document
	engine  *mode.Engine

	// cfgMu guards cfg, which the config watcher swaps from its own
	// goroutine.
	cfgMu sync.Mutex
	cfg   config.Config

	cursor  core.Position
	scroll  core.Position
	message string

	watcher      *config.Watcher
	shutdownOnce sync.Once
}

// New creates an editor from the given options. The backend is
// attached separately so tests can supply an in-memory one.
func New(opts Options) (*Editor, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = cfg.Log.File
	}
	logLevel := opts.LogLevel
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}

	logger := NullLogger
	if logFile != "" {
		logger = NewFileLogger(logFile, ParseLogLevel(logLevel))
	}

	doc := document.New()
	if opts.File != "" {
		loaded, err := document.Load(opts.File)
		if err != nil {
			return nil, &OperationError{Op: "open", Target: opts.File, Err: err}
		}
		doc = loaded
	}

	return &Editor{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		doc:    doc,
		engine: mode.NewEngine(),
	}, nil
}

// SetBackend attaches the terminal surface the editor runs on.
func (e *Editor) SetBackend(b Backend) {
	e.backend = b
}

// Document exposes the open document, mainly for tests.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Cursor returns the cursor's document position.
func (e *Editor) Cursor() core.Position {
	return e.cursor
}

// Message returns the current command line message.
func (e *Editor) Message() string {
	return e.message
}

// Run executes the main loop until quit or a hard failure. It returns
// ErrQuit on a normal exit.
func (e *Editor) Run() error {
	if e.backend == nil {
		return ErrNoBackend
	}

	vp, err := viewport.New(e.backend)
	if err != nil {
		return err
	}

	if e.opts.WatchConfig && e.opts.ConfigPath != "" {
		if err := e.watchConfig(); err != nil {
			e.logger.Warn("config watch unavailable: %v", err)
		}
	}

	loop := event.NewLoop(e.backend, e.currentConfig().TickRate())
	e.logger.Info("editor started")

	if err := e.draw(vp); err != nil {
		return err
	}

	for {
		ev := loop.Next()
		switch ev.Kind {
		case event.KindInput:
			if cmd, ok := e.engine.HandleKey(ev.Key); ok {
				if err := e.apply(cmd, vp.Area()); err != nil {
					if errors.Is(err, ErrQuit) {
						e.logger.Info("editor quit")
						return ErrQuit
					}
					return err
				}
			}
		case event.KindTick:
			// Idle; the redraw below picks up external state such
			// as a reloaded config.
		case event.KindError:
			e.logger.Error("event loop failed: %v", ev.Err)
			return ev.Err
		}

		if err := e.draw(vp); err != nil {
			return err
		}
	}
}

// Shutdown releases the terminal and background watchers. It is safe
// to call from any exit path, multiple times.
func (e *Editor) Shutdown() {
	e.shutdownOnce.Do(func() {
		if e.watcher != nil {
			_ = e.watcher.Close()
		}
		if e.backend != nil {
			e.backend.Fini()
		}
		e.logger.Info("editor shut down")
	})
}

func (e *Editor) watchConfig() error {
	w, err := config.Watch(e.opts.ConfigPath, func(cfg config.Config) {
		e.cfgMu.Lock()
		e.cfg = cfg
		e.cfgMu.Unlock()
		if e.opts.LogLevel == "" {
			e.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
		}
		e.logger.Info("config reloaded")
	}, func(err error) {
		e.logger.Warn("config reload failed: %v", err)
	})
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

func (e *Editor) currentConfig() config.Config {
	e.cfgMu.Lock()
	defer e.cfgMu.Unlock()
	return e.cfg
}

// apply executes one command against the editor state.
func (e *Editor) apply(cmd command.Command, area core.Rect) error {
	pageSize := max(area.Height-chromeRows, 1)

	switch cmd.Kind {
	case command.KindEnterMode:
		e.message = ""

	case command.KindInsertChar:
		e.doc.Insert(e.cursor.Row, e.cursor.Col, string(cmd.Rune))
		e.cursor.Col++

	case command.KindInsertLineBreak:
		e.doc.InsertLineBreak(e.cursor.Row, e.cursor.Col)
		e.cursor = core.NewPosition(0, e.cursor.Row+1)

	case command.KindDeleteCharBackward:
		e.cursor.Row, e.cursor.Col = e.doc.DeleteBackward(e.cursor.Row, e.cursor.Col)

	case command.KindDeleteCharForward:
		e.doc.DeleteForward(e.cursor.Row, e.cursor.Col)

	case command.KindMoveCursorUp:
		e.moveVertically(-cmd.Count)
	case command.KindMoveCursorDown:
		e.moveVertically(cmd.Count)
	case command.KindMoveCursorLeft:
		e.cursor.Col = clamp(e.cursor.Col-cmd.Count, 0, e.doc.LineLen(e.cursor.Row))
	case command.KindMoveCursorRight:
		e.cursor.Col = clamp(e.cursor.Col+cmd.Count, 0, e.doc.LineLen(e.cursor.Row))
	case command.KindMoveCursorLineStart:
		e.cursor.Col = 0
	case command.KindMoveCursorLineEnd:
		e.cursor.Col = e.doc.LineLen(e.cursor.Row)
	case command.KindMoveCursorPageUp:
		e.moveVertically(-pageSize)
	case command.KindMoveCursorPageDown:
		e.moveVertically(pageSize)

	case command.KindSave:
		e.save()
	case command.KindSaveAs:
		e.saveAs(cmd.Name)

	case command.KindQuit:
		return ErrQuit

	case command.KindNotRecognised:
		e.message = fmt.Sprintf("Not a command: %s", cmd.Input)
	}

	return nil
}

// moveVertically shifts the cursor by delta rows, keeping it inside
// the document and inside the target line.
func (e *Editor) moveVertically(delta int) {
	maxRow := max(e.doc.LineCount()-1, 0)
	e.cursor.Row = clamp(e.cursor.Row+delta, 0, maxRow)
	e.cursor.Col = clamp(e.cursor.Col, 0, e.doc.LineLen(e.cursor.Row))
}

func (e *Editor) save() {
	err := e.doc.Save()
	switch {
	case errors.Is(err, document.ErrNoPath):
		e.message = "No file name"
	case err != nil:
		e.logger.Error("save failed: %v", err)
		e.message = fmt.Sprintf("Error: %v", err)
	default:
		e.logger.Info("saved %s", e.doc.Path())
		e.message = fmt.Sprintf("%s written", e.doc.Name())
	}
}

func (e *Editor) saveAs(name string) {
	if err := e.doc.SaveAs(name); err != nil {
		e.logger.Error("save as %s failed: %v", name, err)
		e.message = fmt.Sprintf("Error: %v", err)
		return
	}
	e.logger.Info("saved %s", e.doc.Path())
	e.message = fmt.Sprintf("%s written", e.doc.Name())
}

// draw renders one full frame: document or welcome screen, status
// bar, command line, and the cursor.
func (e *Editor) draw(vp *viewport.Viewport) error {
	area := vp.Area()
	textRows := max(area.Height-chromeRows, 0)
	cfg := e.currentConfig()

	e.scrollIntoView(textRows, area.Width)

	return vp.Draw(func(f *frame.Frame) error {
		if e.showWelcome() {
			err := f.Render(&widget.WelcomeScreen{Version: e.opts.Version, Rows: textRows})
			if err != nil {
				return err
			}
		} else {
			err := f.Render(&widget.DocumentView{Document: e.doc, Scroll: e.scroll, Rows: textRows})
			if err != nil {
				return err
			}
		}

		if area.Height >= 2 {
			bar := &widget.StatusBar{
				Mode:        e.engine.Current(),
				FileName:    e.doc.Name(),
				Modified:    e.doc.Modified(),
				CurrentLine: e.cursor.Row + 1,
				TotalLines:  e.doc.LineCount(),
				Row:         area.Height - 2,
				Style:       cfg.StatusBarStyle(),
			}
			if err := f.Render(bar); err != nil {
				return err
			}
		}

		bottomRow := area.Height - 1
		line := e.message
		cursor := core.NewPosition(e.cursor.Col-e.scroll.Col, e.cursor.Row-e.scroll.Row)
		if cl, col, ok := e.engine.CommandLine(); ok {
			line = cl
			cursor = core.NewPosition(col, bottomRow)
		}
		if bottomRow >= 0 {
			if err := f.Render(&widget.CommandLine{Line: line, Row: bottomRow}); err != nil {
				return err
			}
		}

		f.SetCursorPosition(cursor)
		return nil
	})
}

// showWelcome reports whether the startup greeting should be shown in
// place of the document view.
func (e *Editor) showWelcome() bool {
	return e.doc.IsEmpty() && e.doc.Path() == "" && !e.doc.Modified()
}

// scrollIntoView shifts the scroll offset so the cursor stays inside
// the text area.
func (e *Editor) scrollIntoView(textRows, width int) {
	if textRows > 0 {
		if e.cursor.Row < e.scroll.Row {
			e.scroll.Row = e.cursor.Row
		} else if e.cursor.Row >= e.scroll.Row+textRows {
			e.scroll.Row = e.cursor.Row - textRows + 1
		}
	}
	if width > 0 {
		if e.cursor.Col < e.scroll.Col {
			e.scroll.Col = e.cursor.Col
		} else if e.cursor.Col >= e.scroll.Col+width {
			e.scroll.Col = e.cursor.Col - width + 1
		}
	}
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
