package main

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

var playerInputs = []tetris.Input{
	tetris.InputMoveLeft,
	tetris.InputMoveRight,
	tetris.InputRotate,
	tetris.InputRotateCounterClockwise,
	tetris.InputSoftDrop,
	tetris.InputHardDrop,
}

// Player drives one session with random inputs on simulated time.
type Player struct {
	Config    tetris.Config
	Seed      uint64
	Bag       bool
	Frame     time.Duration
	MaxFrames int
	InputRate float64
}

// Result is what one played game produced.
type Result struct {
	Index    int
	Seed     uint64
	Config   tetris.Config
	Frames   int
	Ticks    int64
	Stats    tetris.Stats
	Events   map[tetris.EventType]int
	Final    tetris.Snapshot
	Failures int
	Systems  []SystemTiming
}

// DropInterval is the gravity period the game ended on.
func (r *Result) DropInterval() time.Duration {
	return r.Config.DropInterval(r.Stats.Level)
}

type SystemTiming struct {
	Name  string
	Calls int64
	Total time.Duration
	Max   time.Duration
}

func (p Player) Play(ctx context.Context) (*Result, error) {
	var rnd tetris.Randomizer = tetris.NewUniform(tetris.NewSeededSource(p.Seed))
	if p.Bag {
		rnd = tetris.NewBag(tetris.NewSeededSource(p.Seed))
	}

	game, err := tetris.NewGame(p.Config, rnd)
	if err != nil {
		return nil, err
	}

	s := session.New(game, log.Default())
	res := &Result{Seed: p.Seed, Config: game.Config(), Events: make(map[tetris.EventType]int)}
	s.Subscribe(func(e tetris.Event) error {
		res.Events[e.Type]++
		return nil
	})

	input := rand.New(rand.NewPCG(p.Seed, ^p.Seed))
	s.Send(tetris.InputNewGame)

	for res.Frames < p.MaxFrames && game.State() != tetris.StateGameOver {
		if res.Frames%1024 == 0 && ctx.Err() != nil {
			break
		}
		if input.Float64() < p.InputRate {
			s.Send(playerInputs[input.IntN(len(playerInputs))])
		}
		s.Once(p.Frame)
		res.Frames++
	}

	res.Ticks = s.Ticks()
	res.Stats = game.Stats()
	res.Final = game.Snapshot()
	res.Failures = s.HandlerFailures()
	for _, st := range s.Stats().Systems {
		res.Systems = append(res.Systems, SystemTiming{
			Name:  st.Name,
			Calls: st.ExecutionCount,
			Total: st.TotalDuration,
			Max:   st.MaxDuration,
		})
	}
	return res, nil
}
