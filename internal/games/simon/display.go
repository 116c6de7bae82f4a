package simon

import (
	"math/rand"
	"time"
)

// Display is the presentation surface driven by the Engine.
// Implementations own only presentation state and must not block.
type Display interface {
	// SetStatus updates the go/stop indicator.
	SetStatus(s Status)

	// Highlight lights one pad for d, then turns it off on its own.
	Highlight(sig Signal, d time.Duration)

	// FlashAll toggles every pad times*2 times, one toggle per interval.
	FlashAll(times int, interval time.Duration)

	// RenderScore shows a score value.
	RenderScore(kind ScoreKind, value int)
}

// RandomSource picks sequence steps. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded math/rand source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
