package simon

import (
	"fmt"

	"github.com/vovakirdan/tui-simon/internal/core"
)

// Signal is one value of the fixed input alphabet: a pad color.
type Signal int

const (
	Green Signal = iota
	Red
	Yellow
	Blue
)

// SignalCount is the size of the alphabet.
const SignalCount = 4

// Signals returns the alphabet in pad order.
func Signals() []Signal {
	return []Signal{Green, Red, Yellow, Blue}
}

// Valid reports whether s belongs to the alphabet.
func (s Signal) Valid() bool {
	return s >= Green && s <= Blue
}

func (s Signal) String() string {
	switch s {
	case Green:
		return "green"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Color returns the base screen color of the pad.
func (s Signal) Color() core.Color {
	switch s {
	case Green:
		return core.ColorGreen
	case Red:
		return core.ColorRed
	case Yellow:
		return core.ColorYellow
	case Blue:
		return core.ColorBlue
	default:
		return core.ColorGray
	}
}

// Status is the binary readiness indicator.
type Status int

const (
	StatusStop Status = iota
	StatusGo
)

func (s Status) String() string {
	if s == StatusGo {
		return "go"
	}
	return "stop"
}

// ScoreKind selects which score a display should update.
type ScoreKind int

const (
	ScoreCurrent ScoreKind = iota
	ScoreHigh
)

func (k ScoreKind) String() string {
	if k == ScoreHigh {
		return "high"
	}
	return "current"
}

// FormatScore pads scores below 10 with a leading zero.
func FormatScore(v int) string {
	return fmt.Sprintf("%02d", v)
}
