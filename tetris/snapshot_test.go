package tetris_test

import (
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDoesNotWriteBoard(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.T)
	require.True(t, g.Start())
	g.Tick()
	g.Tick()

	before := g.Board().Rows()
	s := g.Snapshot()
	assert.Equal(t, before, g.Board().Rows())

	active, ghost := 0, 0
	for _, row := range s.Cells {
		for _, c := range row {
			switch c.Overlay {
			case tetris.OverlayActive:
				active++
			case tetris.OverlayGhost:
				ghost++
			}
		}
	}
	assert.Equal(t, 4, active)
	assert.Equal(t, 4, ghost)
	assert.Equal(t, tetris.T, s.Next)
	assert.Equal(t, tetris.StatePlaying, s.Stats.State)
}

func TestSnapshotWithoutPiece(t *testing.T) {
	g := newTestGame(t, tetris.DefaultConfig(), tetris.O)
	s := g.Snapshot()
	assert.Equal(t, 10, s.Width)
	assert.Equal(t, 20, s.Height)
	for _, row := range s.Cells {
		for _, c := range row {
			assert.Equal(t, tetris.SnapshotCell{}, c)
		}
	}
}
