package tetris_test

import (
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, cfg tetris.Config, kinds ...tetris.Kind) *tetris.Game {
	t.Helper()
	g, err := tetris.NewGame(cfg, tetris.NewSequence(kinds...))
	require.NoError(t, err)
	return g
}

func eventTypes(events []tetris.Event) []tetris.EventType {
	out := make([]tetris.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func findEvent(events []tetris.Event, typ tetris.EventType) (tetris.Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return tetris.Event{}, false
}

// dropUntilLocked soft drops until the current piece locks and returns the
// events raised on the way.
func dropUntilLocked(t *testing.T, g *tetris.Game) []tetris.Event {
	t.Helper()
	var all []tetris.Event
	for range 100 {
		require.True(t, g.SoftDrop())
		events := g.Events()
		all = append(all, events...)
		if _, ok := findEvent(events, tetris.PieceLocked); ok {
			return all
		}
		if _, ok := findEvent(events, tetris.GameOver); ok {
			return all
		}
	}
	t.Fatal("piece never locked")
	return nil
}

func movePiece(g *tetris.Game, dx int) {
	for g.Move(dx) {
	}
}

func currentPiece(t *testing.T, g *tetris.Game) tetris.Piece {
	t.Helper()
	p, ok := g.Piece()
	require.True(t, ok, "expected a falling piece")
	return p
}

func ghostY(t *testing.T, g *tetris.Game) int {
	t.Helper()
	y, ok := g.GhostY()
	require.True(t, ok, "expected a falling piece")
	return y
}

func TestNewGame(t *testing.T) {
	t.Run("starts ready and empty", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
		assert.Equal(t, tetris.StateReady, g.State())
		assert.Equal(t, 1, g.Level())
		_, ok := g.Piece()
		assert.False(t, ok)
	})

	t.Run("rejects bad config", func(t *testing.T) {
		cfg := tetris.DefaultConfig()
		cfg.Width = 0
		_, err := tetris.NewGame(cfg, nil)
		assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
	})

	t.Run("nil randomizer still plays", func(t *testing.T) {
		g, err := tetris.NewGame(tetris.DefaultConfig(), nil)
		require.NoError(t, err)
		assert.True(t, g.Start())
		assert.Equal(t, tetris.StatePlaying, g.State())
	})
}

func TestSpawn(t *testing.T) {
	for _, kind := range tetris.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := newTestGame(t, tetris.DefaultConfig(), kind)
			require.True(t, g.Start())

			p := currentPiece(t, g)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, 4, p.X)
			assert.Equal(t, 0, p.Y+p.Shape.Height()-1, "bottom row on row 0")
			assert.Equal(t, []tetris.EventType{tetris.PieceSpawned}, eventTypes(g.Events()))
		})
	}

	t.Run("wide board centers", func(t *testing.T) {
		cfg := tetris.DefaultConfig()
		cfg.Width = 12
		g := newTestGame(t, cfg, tetris.T)
		require.True(t, g.Start())
		assert.Equal(t, 5, currentPiece(t, g).X)
	})
}

func TestMove(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	require.True(t, g.Start())
	g.Events()

	assert.True(t, g.MoveLeft())
	assert.Equal(t, 3, currentPiece(t, g).X)
	assert.Equal(t, []tetris.EventType{tetris.PieceMoved}, eventTypes(g.Events()))

	movePiece(g, -1)
	assert.Equal(t, 0, currentPiece(t, g).X)
	assert.False(t, g.MoveLeft(), "wall")
	assert.Equal(t, 0, currentPiece(t, g).X)

	movePiece(g, 1)
	assert.Equal(t, 8, currentPiece(t, g).X)
	assert.False(t, g.Move(0))
}

// Five O pieces stacked in the bottom-left corner never complete a row.
func TestStackingWithoutClears(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	require.True(t, g.Start())

	for i := range 5 {
		movePiece(g, -1)
		events := dropUntilLocked(t, g)
		_, cleared := findEvent(events, tetris.LinesCleared)
		assert.False(t, cleared, "drop %d", i)
	}

	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, tetris.StatePlaying, g.State())
	assert.Equal(t, 5, g.Stats().PiecesLocked)

	board := g.Board()
	for y := 10; y < 20; y++ {
		assert.Equal(t, tetris.O.Cell(), board.At(0, y), "row %d", y)
		assert.Equal(t, tetris.O.Cell(), board.At(1, y), "row %d", y)
		assert.Equal(t, tetris.Empty, board.At(2, y), "row %d", y)
	}
	assert.Equal(t, tetris.Empty, board.At(0, 9))
}

// Filling the one gap in the bottom row clears it and scores one line.
func TestFillingGapClearsLine(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.I)

	preset := newTestBoard(t, 10, 20)
	fillRow(preset, 19, 9)
	require.NoError(t, g.LoadBoard(preset))
	require.True(t, g.Start())

	require.True(t, g.Rotate())
	movePiece(g, 1)
	require.Equal(t, 9, currentPiece(t, g).X)

	before := g.Score()
	events := dropUntilLocked(t, g)

	e, ok := findEvent(events, tetris.LinesCleared)
	require.True(t, ok)
	assert.Equal(t, 1, e.Lines)
	assert.Equal(t, before+tetris.BasePoints(1)*g.Level(), g.Score())
	assert.Equal(t, 1, g.Lines())

	board := g.Board()
	for x := 0; x < 9; x++ {
		assert.Equal(t, tetris.Empty, board.At(x, 19), "column %d", x)
	}
	for y := 17; y < 20; y++ {
		assert.Equal(t, tetris.I.Cell(), board.At(9, y), "row %d", y)
	}
}

func TestSpawnOnOccupiedCellsEndsGame(t *testing.T) {
	for _, kind := range tetris.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g := newTestGame(t, tetris.DefaultConfig(), kind)

			preset := newTestBoard(t, 10, 20)
			fillRow(preset, 0)
			require.NoError(t, g.LoadBoard(preset))

			require.True(t, g.Start())
			assert.Equal(t, tetris.StateGameOver, g.State())
			assert.Equal(t, []tetris.EventType{tetris.GameOver}, eventTypes(g.Events()))
			assert.Equal(t, preset.Rows(), g.Board().Rows(), "nothing settled")

			_, ok := g.Piece()
			assert.False(t, ok)
		})
	}
}

func TestLockAboveBoardEndsGame(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.J)

	preset := newTestBoard(t, 10, 20)
	fillRow(preset, 1, 0)
	require.NoError(t, g.LoadBoard(preset))
	require.True(t, g.Start())
	g.Events()

	assert.True(t, g.Tick())
	assert.Equal(t, tetris.StateGameOver, g.State())
	assert.Equal(t, []tetris.EventType{tetris.GameOver}, eventTypes(g.Events()))
	assert.Equal(t, preset.Rows(), g.Board().Rows())

	assert.False(t, g.Tick())
	assert.False(t, g.MoveLeft())
}

func TestLockOnSpawnRowEndsGame(t *testing.T) {
	preset := newTestBoard(t, 10, 20)
	fillRow(preset, 1)
	fillRow(preset, 0, 4, 5, 6, 7)

	t.Run("tick", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.I)
		require.NoError(t, g.LoadBoard(preset))
		require.True(t, g.Start())
		require.Equal(t, 0, currentPiece(t, g).Y)
		g.Events()

		assert.True(t, g.Tick())
		assert.Equal(t, tetris.StateGameOver, g.State())
		assert.Equal(t, []tetris.EventType{tetris.GameOver}, eventTypes(g.Events()))
		assert.Equal(t, preset.Rows(), g.Board().Rows(), "nothing settled or cleared")
		assert.Equal(t, 0, g.Score())
		assert.Equal(t, 0, g.Lines())
		assert.Equal(t, 0, g.Stats().PiecesLocked)
	})

	t.Run("hard drop earns nothing", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.I)
		require.NoError(t, g.LoadBoard(preset))
		require.True(t, g.Start())
		g.Events()

		assert.True(t, g.HardDrop())
		assert.Equal(t, tetris.StateGameOver, g.State())
		assert.Equal(t,
			[]tetris.EventType{tetris.HardDropped, tetris.GameOver},
			eventTypes(g.Events()))
		assert.Equal(t, 0, g.Score())
	})
}

func TestHardDropTopOutEarnsNoBonus(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.J)

	// J spawns on rows -2..0 and can fall one row before row 2 stops it
	preset := newTestBoard(t, 10, 20)
	fillRow(preset, 2)
	require.NoError(t, g.LoadBoard(preset))
	require.True(t, g.Start())
	g.Events()

	assert.True(t, g.HardDrop())
	assert.Equal(t, tetris.StateGameOver, g.State())
	assert.Equal(t,
		[]tetris.EventType{tetris.HardDropped, tetris.GameOver},
		eventTypes(g.Events()))
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, preset.Rows(), g.Board().Rows())
}

func TestGhostY(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)

	_, ok := g.GhostY()
	assert.False(t, ok, "no piece while ready")

	require.True(t, g.Start())
	assert.Equal(t, 18, ghostY(t, g))

	g.Reset()
	_, ok = g.GhostY()
	assert.False(t, ok, "no piece after reset")
}

func TestStackToTheTopEndsGame(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	require.True(t, g.Start())

	for range 10 {
		require.Equal(t, tetris.StatePlaying, g.State())
		g.HardDrop()
	}
	assert.Equal(t, tetris.StateGameOver, g.State())
	assert.Equal(t, 10, g.Stats().PiecesLocked)
}

func TestRotate(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.T)
		require.True(t, g.Start())
		g.Tick()
		g.Events()

		before := currentPiece(t, g)
		assert.True(t, g.Rotate())
		after := currentPiece(t, g)
		assert.True(t, before.Shape.RotateClockwise().Equal(after.Shape))
		assert.Equal(t, before.X, after.X)
		assert.Equal(t, []tetris.EventType{tetris.PieceRotated}, eventTypes(g.Events()))

		assert.True(t, g.RotateCounterClockwise())
		assert.True(t, before.Shape.Equal(currentPiece(t, g).Shape))
	})

	t.Run("kicks off the right wall", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.I)
		require.True(t, g.Start())
		require.True(t, g.Rotate())
		movePiece(g, 1)
		require.Equal(t, 9, currentPiece(t, g).X)

		assert.True(t, g.Rotate())
		p := currentPiece(t, g)
		assert.Equal(t, 1, p.Shape.Height())
		assert.Equal(t, 6, p.X)
	})

	t.Run("blocked rotation changes nothing", func(t *testing.T) {
		g := newTestGame(t, tetris.DefaultConfig(), tetris.I)

		preset := newTestBoard(t, 10, 20)
		for y := 10; y < 20; y++ {
			fillRow(preset, y, 0)
		}
		require.NoError(t, g.LoadBoard(preset))
		require.True(t, g.Start())
		require.True(t, g.Rotate())
		movePiece(g, -1)
		for ghostY(t, g) > currentPiece(t, g).Y {
			require.True(t, g.SoftDrop())
		}
		g.Events()

		before := currentPiece(t, g)
		require.Equal(t, 16, before.Y)

		assert.False(t, g.Rotate())
		assert.False(t, g.RotateCounterClockwise())

		after := currentPiece(t, g)
		assert.Equal(t, before, after)
		assert.Empty(t, g.Events())
	})
}

func TestHardDrop(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	require.True(t, g.Start())
	g.Events()

	assert.True(t, g.HardDrop())
	assert.Equal(t, 19*2, g.Score())
	assert.Equal(t,
		[]tetris.EventType{tetris.HardDropped, tetris.PieceLocked, tetris.PieceSpawned},
		eventTypes(g.Events()))

	board := g.Board()
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, tetris.O.Cell(), board.At(c[0], c[1]))
	}
}

func TestLevelUp(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.LinesPerLevel = 1
	g := newTestGame(t, cfg, tetris.I)

	preset := newTestBoard(t, 10, 20)
	fillRow(preset, 19, 9)
	require.NoError(t, g.LoadBoard(preset))
	require.True(t, g.Start())
	interval := g.DropInterval()

	require.True(t, g.Rotate())
	movePiece(g, 1)
	events := dropUntilLocked(t, g)

	e, ok := findEvent(events, tetris.LevelUp)
	require.True(t, ok)
	assert.Equal(t, 2, e.Level)
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, tetris.BasePoints(1), g.Score(), "scored at the level the clear happened on")
	assert.Less(t, g.DropInterval(), interval)
}

func TestPause(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.T)
	assert.False(t, g.TogglePause(), "nothing to pause before start")

	require.True(t, g.Start())
	g.Events()
	before := currentPiece(t, g)

	assert.True(t, g.TogglePause())
	assert.Equal(t, tetris.StatePaused, g.State())
	assert.False(t, g.MoveLeft())
	assert.False(t, g.Rotate())
	assert.False(t, g.Tick())
	assert.False(t, g.HardDrop())
	assert.Equal(t, before, currentPiece(t, g))

	assert.True(t, g.TogglePause())
	assert.Equal(t, tetris.StatePlaying, g.State())
	assert.Equal(t, []tetris.EventType{tetris.Paused, tetris.Resumed}, eventTypes(g.Events()))
}

func TestHandle(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	assert.False(t, g.Handle(tetris.InputMoveLeft), "ignored while ready")

	assert.True(t, g.Handle(tetris.InputNewGame))
	assert.Equal(t, tetris.StatePlaying, g.State())

	assert.True(t, g.Handle(tetris.InputMoveLeft))
	assert.True(t, g.Handle(tetris.InputMoveRight))
	assert.True(t, g.Handle(tetris.InputRotate))
	assert.True(t, g.Handle(tetris.InputRotateCounterClockwise))
	assert.True(t, g.Handle(tetris.InputSoftDrop))
	assert.True(t, g.Handle(tetris.InputHardDrop))
	assert.Positive(t, g.Score())
	assert.True(t, g.Handle(tetris.InputTogglePause))
	assert.False(t, g.Handle(tetris.Input(0)))

	assert.True(t, g.Handle(tetris.InputNewGame))
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, tetris.StatePlaying, g.State())
	assert.Equal(t, 0, g.Stats().PiecesLocked)
}

func TestResetAndLoadBoard(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	require.True(t, g.Start())
	g.HardDrop()

	assert.Error(t, g.LoadBoard(newTestBoard(t, 10, 20)), "only in ready")

	g.Reset()
	assert.Equal(t, tetris.StateReady, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, newTestBoard(t, 10, 20).Rows(), g.Board().Rows())

	assert.ErrorIs(t, g.LoadBoard(newTestBoard(t, 12, 20)), tetris.ErrInvalidDimensions)
}

func TestScoreNeverDecreases(t *testing.T) {
	g, err := tetris.NewGame(tetris.DefaultConfig(), tetris.NewUniform(tetris.NewSeededSource(3)))
	require.NoError(t, err)
	require.True(t, g.Start())

	inputs := []tetris.Input{
		tetris.InputMoveLeft, tetris.InputRotate, tetris.InputMoveRight,
		tetris.InputSoftDrop, tetris.InputHardDrop, tetris.InputRotateCounterClockwise,
	}
	src := tetris.NewSeededSource(9)
	last := 0
	for i := 0; i < 2000 && g.State() == tetris.StatePlaying; i++ {
		g.Handle(inputs[src.IntN(len(inputs))])
		assert.GreaterOrEqual(t, g.Score(), last)
		last = g.Score()

		if p, ok := g.Piece(); ok {
			assert.True(t, g.Board().IsValidPosition(p.Shape, p.X, p.Y), "falling piece overlaps the board")
		}
	}
}
