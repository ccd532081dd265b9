package tetris

// Piece is the falling piece: its current orientation and the board
// coordinates of the top-left corner of its bounding box. Y may be negative
// while the piece is still entering the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

func newPiece(kind Kind, boardWidth int) Piece {
	shape := Definition(kind).Shape
	return Piece{
		Kind:  kind,
		Shape: shape,
		X:     max(0, min(boardWidth/2-1, boardWidth-shape.Width())),
		Y:     1 - shape.Height(),
	}
}

// Cells calls fn with the board coordinates of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for i := range p.Shape {
		for j, occupied := range p.Shape[i] {
			if occupied {
				fn(p.X+j, p.Y+i)
			}
		}
	}
}

// aboveBoard reports whether any occupied cell sits above row 0.
func (p Piece) aboveBoard() bool {
	above := false
	p.Cells(func(_, y int) {
		if y < 0 {
			above = true
		}
	})
	return above
}
