// Package event turns a blocking key source into a stream of editor
// events. A background goroutine polls the source and forwards key
// presses over a channel; consumers pull events one at a time and
// receive a Tick when the source has been idle for a while, so the
// main loop can do periodic work without a second clock.
package event

import (
	"errors"
	"time"

	"github.com/vire-editor/vire/internal/input/key"
	"github.com/vire-editor/vire/internal/renderer/backend"
)

// ErrStopped is the error carried by Error events after the loop's
// producer has shut down and the queue has drained.
var ErrStopped = errors.New("event loop stopped")

// DefaultTickRate is used when the loop is created with a
// non-positive tick rate.
const DefaultTickRate = 250 * time.Millisecond

// queueSize bounds how many key presses may pile up between draws.
const queueSize = 64

// Kind discriminates the event variants.
type Kind int

const (
	// KindInput carries one key press.
	KindInput Kind = iota
	// KindTick is emitted when no input arrived within the tick rate.
	KindTick
	// KindError carries a hard key source failure. It is terminal:
	// the producer stops and every later Next reports ErrStopped.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "Input"
	case KindTick:
		return "Tick"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is one occurrence pulled from the loop. Key is meaningful for
// KindInput, Err for KindError.
type Event struct {
	Kind Kind
	Key  key.Event
	Err  error
}

// Loop owns the polling goroutine and the queue between it and the
// consumer. A Loop is single-consumer.
type Loop struct {
	tickRate time.Duration
	events   chan Event
}

// NewLoop starts polling the source in the background.
func NewLoop(source backend.KeySource, tickRate time.Duration) *Loop {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	l := &Loop{
		tickRate: tickRate,
		events:   make(chan Event, queueSize),
	}
	go l.poll(source)
	return l
}

// poll forwards key presses until the source fails, then emits one
// final Error event and exits.
func (l *Loop) poll(source backend.KeySource) {
	defer close(l.events)

	for {
		ev, err := source.PollKey()
		if err != nil {
			l.events <- Event{Kind: KindError, Err: err}
			return
		}
		l.events <- Event{Kind: KindInput, Key: ev}
	}
}

// Next returns the next event, waiting at most the tick rate before
// reporting a Tick. Queued input always wins over a due tick, so
// presses are never reordered behind idle events.
func (l *Loop) Next() Event {
	select {
	case ev, ok := <-l.events:
		if !ok {
			return Event{Kind: KindError, Err: ErrStopped}
		}
		return ev
	default:
	}

	timer := time.NewTimer(l.tickRate)
	defer timer.Stop()

	select {
	case ev, ok := <-l.events:
		if !ok {
			return Event{Kind: KindError, Err: ErrStopped}
		}
		return ev
	case <-timer.C:
		return Event{Kind: KindTick}
	}
}
