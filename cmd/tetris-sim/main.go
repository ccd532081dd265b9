package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plus3/tetris/tetris"
)

func main() {
	defaults := tetris.DefaultConfig()

	duration := flag.Duration("duration", 10*time.Second, "Wall clock limit for the whole run.")
	sessions := flag.Int("sessions", 8, "Number of games played in parallel.")
	seed := flag.Uint64("seed", 1, "Base seed; session i uses seed+i for pieces and input.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time per frame.")
	maxFrames := flag.Int("max-frames", 200000, "Frame limit per game.")
	inputRate := flag.Float64("input-rate", 0.2, "Chance of a player input on each frame.")
	bag := flag.Bool("bag", false, "Deal pieces from a shuffled 7-bag instead of uniformly.")
	width := flag.Int("width", defaults.Width, "Board width.")
	height := flag.Int("height", defaults.Height, "Board height.")
	linesPerLevel := flag.Int("lines-per-level", defaults.LinesPerLevel, "Cleared lines per level step.")
	showBoard := flag.Bool("board", false, "Print the final board of the best game.")
	flag.Parse()

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	cfg.LinesPerLevel = *linesPerLevel
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *sessions <= 0 || *frame <= 0 {
		log.Fatalf("Invalid configuration: need at least one session and a positive frame")
	}

	log.Printf("Starting %d sessions on a %dx%d board...\n", *sessions, cfg.Width, cfg.Height)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	results := make([]*Result, *sessions)
	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()

	for i := range results {
		p := Player{
			Config:    cfg,
			Seed:      *seed + uint64(i),
			Bag:       *bag,
			Frame:     *frame,
			MaxFrames: *maxFrames,
			InputRate: *inputRate,
		}
		g.Go(func() error {
			res, err := p.Play(ctx)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			res.Index = i
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	report := NewReport(cfg, results, time.Since(start))
	report.ShowBoard = *showBoard

	fmt.Println("\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
