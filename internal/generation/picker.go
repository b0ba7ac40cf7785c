package generation

import (
	"math/rand/v2"
	"sync"
)

// Picker is the only source of randomness in content generation.
type Picker interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

type seededPicker struct {
	r *rand.Rand
}

// NewSeededPicker returns a deterministic picker. It is not safe for
// concurrent use.
func NewSeededPicker(seed uint64) Picker {
	return &seededPicker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *seededPicker) Intn(n int) int { return p.r.IntN(n) }

type lockedPicker struct {
	mu    sync.Mutex
	inner Picker
}

// NewLockedPicker serializes access to inner.
func NewLockedPicker(inner Picker) Picker {
	return &lockedPicker{inner: inner}
}

func (p *lockedPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Intn(n)
}

// Pick returns a uniformly chosen element, or the zero value for an empty list.
func Pick[T any](p Picker, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[p.Intn(len(list))]
}
