package tetris

import "fmt"

// EventType names something the game raised for collaborators (sound, rendering).
type EventType uint8

const (
	PieceSpawned EventType = iota + 1
	PieceMoved
	PieceRotated
	PieceLocked
	LinesCleared
	LevelUp
	GameOver
	Paused
	Resumed
	HardDropped
)

var eventNames = map[EventType]string{
	PieceSpawned: "PieceSpawned",
	PieceMoved:   "PieceMoved",
	PieceRotated: "PieceRotated",
	PieceLocked:  "PieceLocked",
	LinesCleared: "LinesCleared",
	LevelUp:      "LevelUp",
	GameOver:     "GameOver",
	Paused:       "Paused",
	Resumed:      "Resumed",
	HardDropped:  "HardDropped",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is a discrete notification. Only the fields relevant to Type are set:
// Kind for piece events, Lines for LinesCleared, Level for LevelUp and Rows
// for HardDropped.
type Event struct {
	Type  EventType
	Kind  Kind
	Lines int
	Level int
	Rows  int
}

func (e Event) String() string {
	switch e.Type {
	case PieceSpawned, PieceMoved, PieceRotated, PieceLocked:
		return fmt.Sprintf("%s(%s)", e.Type, e.Kind)
	case LinesCleared:
		return fmt.Sprintf("%s(%d)", e.Type, e.Lines)
	case LevelUp:
		return fmt.Sprintf("%s(%d)", e.Type, e.Level)
	case HardDropped:
		return fmt.Sprintf("%s(%d)", e.Type, e.Rows)
	default:
		return e.Type.String()
	}
}
