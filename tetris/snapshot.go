package tetris

import "strings"

// Overlay marks how a snapshot cell is drawn.
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayGhost
	OverlayActive
)

// SnapshotCell is one cell of a rendered frame.
type SnapshotCell struct {
	Cell    Cell
	Overlay Overlay
}

// Snapshot is a read-only frame of the game: the settled board with the
// ghost and the falling piece laid over it.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]SnapshotCell
	Next   Kind
	Stats  Stats
}

// Snapshot computes the current frame. The board is not modified.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Cells:  make([][]SnapshotCell, g.board.Height()),
		Next:   g.next,
		Stats:  g.Stats(),
	}
	for y := range s.Cells {
		s.Cells[y] = make([]SnapshotCell, s.Width)
		for x := range s.Cells[y] {
			s.Cells[y][x] = SnapshotCell{Cell: g.board.At(x, y)}
		}
	}

	if !g.hasPiece {
		return s
	}

	paint := func(p Piece, overlay Overlay) {
		p.Cells(func(x, y int) {
			if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
				return
			}
			s.Cells[y][x] = SnapshotCell{Cell: p.Kind.Cell(), Overlay: overlay}
		})
	}

	ghost := g.piece
	ghost.Y, _ = g.GhostY()
	paint(ghost, OverlayGhost)
	paint(g.piece, OverlayActive)
	return s
}

// String draws the frame as text: '.' for empty, ':' for the ghost and the
// kind letter for settled and falling cells.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y, row := range s.Cells {
		for _, c := range row {
			switch {
			case c.Overlay == OverlayGhost:
				sb.WriteByte(':')
			case c.Cell == Empty:
				sb.WriteByte('.')
			default:
				if kind, ok := c.Cell.Kind(); ok {
					sb.WriteString(kind.String())
				} else {
					sb.WriteByte('#')
				}
			}
		}
		if y < len(s.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
