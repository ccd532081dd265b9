package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	Z
	T
)

const kindCount = 7

var kindNames = [kindCount]string{"I", "J", "L", "O", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) >= kindCount {
		return "?"
	}
	return kindNames[k]
}

// Cell returns the board marker used when a piece of this kind settles.
func (k Kind) Cell() Cell {
	return Cell(k) + 1
}

// Kinds returns every tetromino kind in catalog order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, Z, T}
}

// Color is an RGB display color.
type Color struct {
	R, G, B uint8
}

// Tetromino is a catalog entry: a spawn orientation and a display color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color Color
}

// Shape is a binary occupancy matrix indexed [row][column].
// Shapes handed out by the catalog must not be mutated; use Clone.
type Shape [][]bool

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// RotateClockwise transposes the matrix and reverses every row.
func (s Shape) RotateClockwise() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}

	for i := range h {
		for j := range w {
			rotated[j][h-1-i] = s[i][j]
		}
	}
	return rotated
}

// RotateCounterClockwise transposes the matrix and reverses the row order.
func (s Shape) RotateCounterClockwise() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}

	for i := range h {
		for j := range w {
			rotated[w-1-j][i] = s[i][j]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

func shape(rows ...string) Shape {
	out := make(Shape, len(rows))
	for i, row := range rows {
		out[i] = make([]bool, len(row))
		for j, c := range row {
			out[i][j] = c == '#'
		}
	}
	return out
}

var catalog = [kindCount]Tetromino{
	I: {Kind: I, Color: Color{80, 227, 230}, Shape: shape(
		"####",
	)},
	J: {Kind: J, Color: Color{36, 95, 223}, Shape: shape(
		".#.",
		".#.",
		"##.",
	)},
	L: {Kind: L, Color: Color{223, 173, 36}, Shape: shape(
		".#.",
		".#.",
		".##",
	)},
	O: {Kind: O, Color: Color{223, 217, 36}, Shape: shape(
		"##",
		"##",
	)},
	S: {Kind: S, Color: Color{48, 211, 56}, Shape: shape(
		".##",
		"##.",
	)},
	Z: {Kind: Z, Color: Color{227, 78, 78}, Shape: shape(
		"##.",
		".##",
	)},
	T: {Kind: T, Color: Color{132, 61, 198}, Shape: shape(
		"###",
		".#.",
	)},
}

// Definition returns a copy of the catalog entry for kind, or the zero
// Tetromino when kind is not one of the seven.
func Definition(kind Kind) Tetromino {
	if int(kind) >= kindCount {
		return Tetromino{}
	}
	def := catalog[kind]
	def.Shape = def.Shape.Clone()
	return def
}
