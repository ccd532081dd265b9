package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the phase of a game.
type State uint8

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Input is an abstract player intent, independent of any key binding.
type Input uint8

const (
	InputMoveLeft Input = iota + 1
	InputMoveRight
	InputSoftDrop
	InputRotate
	InputRotateCounterClockwise
	InputHardDrop
	InputTogglePause
	InputNewGame
)

var inputNames = map[Input]string{
	InputMoveLeft:               "MoveLeft",
	InputMoveRight:              "MoveRight",
	InputSoftDrop:               "SoftDrop",
	InputRotate:                 "Rotate",
	InputRotateCounterClockwise: "RotateCounterClockwise",
	InputHardDrop:               "HardDrop",
	InputTogglePause:            "TogglePause",
	InputNewGame:                "NewGame",
}

func (in Input) String() string {
	if name, ok := inputNames[in]; ok {
		return name
	}
	return fmt.Sprintf("Input(%d)", uint8(in))
}

// Stats is a copy of the session counters.
type Stats struct {
	Score        int
	Lines        int
	Level        int
	PiecesLocked int
	State        State
}

// Game owns the board and the falling piece and applies player intents to them.
// Rejected moves are not errors: every operation reports whether it changed
// anything and otherwise leaves the game untouched. A Game is not safe for
// concurrent use.
type Game struct {
	cfg   Config
	rnd   Randomizer
	board *Board

	piece    Piece
	hasPiece bool
	// dropped is set once the falling piece has moved below its spawn row.
	dropped bool
	next    Kind

	state  State
	score  int
	lines  int
	level  int
	locked int

	events []Event
}

// NewGame creates a game in the Ready state. A nil randomizer draws uniformly
// from a randomly seeded source.
func NewGame(cfg Config, rnd Randomizer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if rnd == nil {
		rnd = NewUniform(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	g := &Game{
		cfg:   cfg,
		rnd:   rnd,
		board: board,
	}
	g.Reset()
	return g, nil
}

// Reset discards the session and returns to Ready with an empty board.
func (g *Game) Reset() {
	g.board.Reset()
	g.piece = Piece{}
	g.hasPiece = false
	g.state = StateReady
	g.score = 0
	g.lines = 0
	g.level = 1
	g.locked = 0
}

// LoadBoard replaces the settled cells with a copy of b. Only allowed in Ready.
func (g *Game) LoadBoard(b *Board) error {
	if g.state != StateReady {
		return fmt.Errorf("tetris: cannot load a board while %s", g.state)
	}
	if b.Width() != g.board.Width() || b.Height() != g.board.Height() {
		return fmt.Errorf("%w: board is %dx%d, game is %dx%d", ErrInvalidDimensions,
			b.Width(), b.Height(), g.board.Width(), g.board.Height())
	}
	g.board = b.Clone()
	return nil
}

// Start moves a Ready game to Playing and spawns the first piece.
func (g *Game) Start() bool {
	if g.state != StateReady {
		return false
	}
	g.state = StatePlaying
	g.next = g.rnd.Next()
	g.spawn()
	return true
}

// NewGame resets and immediately starts a fresh session.
func (g *Game) NewGame() {
	g.Reset()
	g.Start()
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns the events raised since the previous call, oldest first.
func (g *Game) Events() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) spawn() {
	kind := g.next
	g.next = g.rnd.Next()

	p := newPiece(kind, g.board.Width())
	if !g.board.IsValidPosition(p.Shape, p.X, p.Y) {
		g.topOut()
		return
	}

	g.piece = p
	g.hasPiece = true
	g.dropped = false
	g.emit(Event{Type: PieceSpawned, Kind: kind})
}

func (g *Game) topOut() {
	g.hasPiece = false
	g.state = StateGameOver
	g.emit(Event{Type: GameOver})
}

func (g *Game) fits(shape Shape, x, y int) bool {
	return g.board.IsValidPosition(shape, x, y)
}

// Move shifts the piece dx columns if the target is free.
func (g *Game) Move(dx int) bool {
	if g.state != StatePlaying || dx == 0 {
		return false
	}
	if !g.fits(g.piece.Shape, g.piece.X+dx, g.piece.Y) {
		return false
	}
	g.piece.X += dx
	g.emit(Event{Type: PieceMoved, Kind: g.piece.Kind})
	return true
}

func (g *Game) MoveLeft() bool  { return g.Move(-1) }
func (g *Game) MoveRight() bool { return g.Move(1) }

// Rotate turns the piece 90 degrees clockwise.
func (g *Game) Rotate() bool {
	if g.state != StatePlaying {
		return false
	}
	return g.rotateTo(g.piece.Shape.RotateClockwise())
}

// RotateCounterClockwise turns the piece 90 degrees counter-clockwise.
func (g *Game) RotateCounterClockwise() bool {
	if g.state != StatePlaying {
		return false
	}
	return g.rotateTo(g.piece.Shape.RotateCounterClockwise())
}

// rotateTo tries the rotated shape in place, then at horizontal kicks of
// +1, -1, +2, -2, ... up to the rotated shape's width. The piece only changes
// when some placement fits.
func (g *Game) rotateTo(rotated Shape) bool {
	x, y := g.piece.X, g.piece.Y

	dx, ok := 0, g.fits(rotated, x, y)
	for k := 1; !ok && k <= rotated.Width(); k++ {
		switch {
		case g.fits(rotated, x+k, y):
			dx, ok = k, true
		case g.fits(rotated, x-k, y):
			dx, ok = -k, true
		}
	}
	if !ok {
		return false
	}

	g.piece.Shape = rotated
	g.piece.X = x + dx
	g.emit(Event{Type: PieceRotated, Kind: g.piece.Kind})
	return true
}

// SoftDrop moves the piece down one row, locking it if it cannot move.
func (g *Game) SoftDrop() bool {
	return g.Tick()
}

// Tick applies one step of gravity: move down one row or lock.
func (g *Game) Tick() bool {
	if g.state != StatePlaying {
		return false
	}
	if g.fits(g.piece.Shape, g.piece.X, g.piece.Y+1) {
		g.piece.Y++
		g.dropped = true
		g.emit(Event{Type: PieceMoved, Kind: g.piece.Kind})
		return true
	}
	g.lock()
	return true
}

// HardDrop drops the piece as far as it goes and locks it at once.
func (g *Game) HardDrop() bool {
	if g.state != StatePlaying {
		return false
	}

	rows := 0
	for g.fits(g.piece.Shape, g.piece.X, g.piece.Y+1) {
		g.piece.Y++
		rows++
	}
	if rows > 0 {
		g.dropped = true
	}
	g.emit(Event{Type: HardDropped, Kind: g.piece.Kind, Rows: rows})
	if g.lock() {
		g.score += rows * g.cfg.HardDropPointsPerRow
	}
	return true
}

// lock settles the piece and spawns the next one. It reports false when the
// game topped out instead.
func (g *Game) lock() bool {
	// stuck on the spawn row, or not fully on the board
	if !g.dropped || g.piece.aboveBoard() {
		g.topOut()
		return false
	}

	g.board.Settle(g.piece.Shape, g.piece.X, g.piece.Y, g.piece.Kind.Cell())
	g.hasPiece = false
	g.locked++
	g.emit(Event{Type: PieceLocked, Kind: g.piece.Kind})

	if n := g.board.ClearFullLines(); n > 0 {
		g.score += LineClearScore(n, g.level)
		g.lines += n
		g.emit(Event{Type: LinesCleared, Lines: n})

		for target := LevelFor(g.level, g.lines, g.cfg.LinesPerLevel); g.level < target; {
			g.level++
			g.emit(Event{Type: LevelUp, Level: g.level})
		}
	}

	g.spawn()
	return true
}

// TogglePause switches between Playing and Paused.
func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.emit(Event{Type: Paused})
	case StatePaused:
		g.state = StatePlaying
		g.emit(Event{Type: Resumed})
	default:
		return false
	}
	return true
}

// Handle applies an abstract input and reports whether it changed the game.
func (g *Game) Handle(in Input) bool {
	switch in {
	case InputMoveLeft:
		return g.MoveLeft()
	case InputMoveRight:
		return g.MoveRight()
	case InputSoftDrop:
		return g.SoftDrop()
	case InputRotate:
		return g.Rotate()
	case InputRotateCounterClockwise:
		return g.RotateCounterClockwise()
	case InputHardDrop:
		return g.HardDrop()
	case InputTogglePause:
		return g.TogglePause()
	case InputNewGame:
		g.NewGame()
		return true
	default:
		return false
	}
}

func (g *Game) State() State { return g.state }
func (g *Game) Score() int   { return g.score }
func (g *Game) Lines() int   { return g.lines }
func (g *Game) Level() int   { return g.level }
func (g *Game) Next() Kind   { return g.next }

func (g *Game) Config() Config { return g.cfg }

func (g *Game) Stats() Stats {
	return Stats{
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		PiecesLocked: g.locked,
		State:        g.state,
	}
}

// DropInterval is the gravity period for the current level.
func (g *Game) DropInterval() time.Duration {
	return g.cfg.DropInterval(g.level)
}

// Board returns a copy of the settled cells.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Piece returns a copy of the falling piece, if there is one.
func (g *Game) Piece() (Piece, bool) {
	if !g.hasPiece {
		return Piece{}, false
	}
	p := g.piece
	p.Shape = p.Shape.Clone()
	return p, true
}

// GhostY is the origin row the falling piece would lock at if hard dropped.
// It reports false when there is no falling piece.
func (g *Game) GhostY() (int, bool) {
	if !g.hasPiece {
		return 0, false
	}
	y := g.piece.Y
	for g.fits(g.piece.Shape, g.piece.X, y+1) {
		y++
	}
	return y, true
}
