// Package disclosure models a two-state show/hide surface such as a detail
// modal or a filter panel.
package disclosure

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

const (
	StateClosed = "closed"
	StateOpen   = "open"

	EventOpen  = "open"
	EventClose = "close"
)

// Disclosure is closed until opened. Opening an open disclosure and
// closing a closed one do nothing.
type Disclosure struct {
	name   string
	fsm    *fsm.FSM
	logger *zap.Logger
}

func New(name string, logger *zap.Logger) *Disclosure {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Disclosure{name: name, logger: logger}
	d.fsm = fsm.NewFSM(
		StateClosed,
		fsm.Events{
			{Name: EventOpen, Src: []string{StateClosed}, Dst: StateOpen},
			{Name: EventClose, Src: []string{StateOpen}, Dst: StateClosed},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				d.logger.Debug("disclosure transition",
					zap.String("disclosure", d.name),
					zap.String("from", e.Src),
					zap.String("to", e.Dst))
			},
		},
	)
	return d
}

func (d *Disclosure) Name() string { return d.name }

// Open shows the surface. It reports whether the state changed.
func (d *Disclosure) Open() bool {
	return d.send(EventOpen)
}

// Close hides the surface. It reports whether the state changed.
func (d *Disclosure) Close() bool {
	return d.send(EventClose)
}

// Toggle opens a closed disclosure and closes an open one.
func (d *Disclosure) Toggle() {
	if d.IsOpen() {
		d.Close()
		return
	}
	d.Open()
}

func (d *Disclosure) IsOpen() bool {
	return d.fsm.Is(StateOpen)
}

func (d *Disclosure) State() string {
	return d.fsm.Current()
}

func (d *Disclosure) send(event string) bool {
	if !d.fsm.Can(event) {
		return false
	}
	if err := d.fsm.Event(context.Background(), event); err != nil {
		d.logger.Warn("disclosure event rejected",
			zap.String("disclosure", d.name),
			zap.String("event", event),
			zap.Error(err))
		return false
	}
	return true
}
