package session

import (
	"math"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetris"
)

// Gravity is the drop timer state.
type Gravity struct {
	Elapsed time.Duration
	Ticks   int64
}

// InputSystem applies queued inputs to the game in arrival order.
type InputSystem struct {
	Game   engine.Resource[tetris.Game]
	Inputs engine.Resource[InputQueue]
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	game := s.Game.Get()
	for _, in := range s.Inputs.Get().Drain() {
		game.Handle(in)
	}
}

// GravitySystem moves the piece down once per drop interval while the game
// is playing. Time spent in any other state is discarded, so resuming from
// pause never replays missed ticks.
type GravitySystem struct {
	Game    engine.Resource[tetris.Game]
	Gravity engine.Resource[Gravity]
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	game := s.Game.Get()
	gravity := s.Gravity.Get()

	if game.State() != tetris.StatePlaying {
		gravity.Elapsed = 0
		return
	}

	gravity.Elapsed += time.Duration(math.Round(frame.DeltaTime * float64(time.Second)))
	for game.State() == tetris.StatePlaying {
		interval := game.DropInterval()
		if gravity.Elapsed < interval {
			break
		}
		gravity.Elapsed -= interval
		gravity.Ticks++
		game.Tick()
	}
}

// EventSystem hands the frame's game events to the dispatcher once every
// other system has run.
type EventSystem struct {
	Game       engine.Resource[tetris.Game]
	Dispatcher engine.Resource[Dispatcher]
}

func (s *EventSystem) Execute(frame *engine.UpdateFrame) {
	events := s.Game.Get().Events()
	if len(events) == 0 {
		return
	}

	dispatcher := s.Dispatcher.Get()
	frame.Commands.Defer(func() {
		for _, e := range events {
			dispatcher.Publish(e)
		}
	})
}
