package session

import (
	"fmt"
	"log"

	"github.com/plus3/tetris/tetris"
)

// Handler receives game events, e.g. to play a sound or redraw.
type Handler func(tetris.Event) error

// Dispatcher fans game events out to handlers. A failing handler is logged
// and skipped; it never reaches the game.
type Dispatcher struct {
	handlers []Handler
	logger   *log.Logger
	failures int
}

func NewDispatcher(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Subscribe(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Publish delivers e to every handler in subscription order.
func (d *Dispatcher) Publish(e tetris.Event) {
	for i, h := range d.handlers {
		if err := d.call(h, e); err != nil {
			d.failures++
			d.logger.Printf("session: handler %d failed on %s: %v", i, e, err)
		}
	}
}

func (d *Dispatcher) call(h Handler, e tetris.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(e)
}

// Failures counts handler errors and panics since creation.
func (d *Dispatcher) Failures() int {
	return d.failures
}
