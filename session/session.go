// Package session runs a tetris.Game on the engine scheduler: queued inputs,
// the drop timer and event delivery to collaborators such as sound or
// rendering.
package session

import (
	"context"
	"log"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetris"
)

// Session is the game loop around one game. Send and Subscribe may be called
// from any goroutine before Run; everything else belongs to the goroutine
// driving the frames.
type Session struct {
	game       *tetris.Game
	inputs     *InputQueue
	dispatcher *Dispatcher
	gravity    *Gravity
	scheduler  *engine.Scheduler
}

// New builds the loop for game. A nil logger uses the standard logger.
func New(game *tetris.Game, logger *log.Logger) *Session {
	s := &Session{
		game:       game,
		inputs:     &InputQueue{},
		dispatcher: NewDispatcher(logger),
		gravity:    &Gravity{},
	}

	resources := engine.NewResources()
	engine.AddResource(resources, s.game)
	engine.AddResource(resources, s.inputs)
	engine.AddResource(resources, s.dispatcher)
	engine.AddResource(resources, s.gravity)

	s.scheduler = engine.NewScheduler(resources)
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&EventSystem{})
	return s
}

// Send queues an input for the next frame.
func (s *Session) Send(in tetris.Input) {
	s.inputs.Push(in)
}

// Subscribe registers a handler for game events.
func (s *Session) Subscribe(h Handler) {
	s.dispatcher.Subscribe(h)
}

// Once advances the loop by dt.
func (s *Session) Once(dt time.Duration) {
	s.scheduler.Once(dt.Seconds())
}

// Run drives frames every interval until ctx is cancelled.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

func (s *Session) Game() *tetris.Game {
	return s.game
}

// Ticks is the number of gravity ticks applied so far.
func (s *Session) Ticks() int64 {
	return s.gravity.Ticks
}

// HandlerFailures counts handler errors and panics.
func (s *Session) HandlerFailures() int {
	return s.dispatcher.Failures()
}

func (s *Session) Stats() *engine.SchedulerStats {
	return s.scheduler.GetStats()
}
