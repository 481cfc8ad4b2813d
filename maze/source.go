package maze

import (
	"math/rand"
	"time"
)

// Source supplies the uniform choices the generator makes.
type Source interface {
	// Index returns a uniform integer in [0, n). n is always positive.
	Index(n int) int

	// Direction returns one of the four directions, each with probability 1/4.
	Direction() Direction
}

type randSource struct {
	rand *rand.Rand
}

// NewSource returns a Source backed by math/rand, seeded with seed.
func NewSource(seed int64) Source {
	return &randSource{rand: rand.New(rand.NewSource(seed))}
}

// TimeSeed returns a seed derived from the current time, for callers that
// didn't ask for a specific one.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

func (source *randSource) Index(n int) int {
	return source.rand.Intn(n)
}

func (source *randSource) Direction() Direction {
	return Directions[source.rand.Intn(len(Directions))]
}
