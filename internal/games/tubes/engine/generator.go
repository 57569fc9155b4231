package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultSpare is the number of empty tubes appended to every level.
const DefaultSpare = 2

var (
	// ErrInvalidParams is returned for generator inputs that cannot form a level.
	ErrInvalidParams = errors.New("engine: invalid generation parameters")

	// ErrGenerationCorrupt means a source tube ran dry while it still had to
	// yield a unit. It indicates broken shuffle bookkeeping, never bad input.
	ErrGenerationCorrupt = errors.New("engine: generation bookkeeping corrupted")
)

// GenParams configures level generation.
type GenParams struct {
	Palette  []Color // Ordered distinct colors, one source tube each
	Capacity int     // Units per tube
	Seed     int64   // Same seed, same layout
	Spare    int     // Empty tubes appended after shuffling
}

// DefaultGenParams returns the classic layout: twelve colors, capacity four.
func DefaultGenParams() GenParams {
	return GenParams{
		Palette:  FullPalette(),
		Capacity: 4,
		Spare:    DefaultSpare,
	}
}

// Validate checks the parameters before generation.
func (p GenParams) Validate() error {
	if len(p.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidParams)
	}
	if p.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalidParams, p.Capacity)
	}
	if p.Spare < 0 {
		return fmt.Errorf("%w: spare %d", ErrInvalidParams, p.Spare)
	}
	seen := make(map[Color]bool, len(p.Palette))
	for _, c := range p.Palette {
		if !c.Valid() {
			return fmt.Errorf("%w: color %d outside palette", ErrInvalidParams, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate color %s", ErrInvalidParams, c)
		}
		seen[c] = true
	}
	return nil
}

// Generate builds a shuffled starting layout.
//
// One full source tube per palette color is drained one unit at a time into
// the destination tube at the same index; after every pass the destination
// tubes themselves are shuffled. The color multiset is conserved exactly.
// The result is not checked for solvability; the spare tubes provide the
// headroom.
func Generate(index int, p GenParams) (*Level, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))
	capacity := float64(p.Capacity)
	n := len(p.Palette)

	sources := make([]Tube, n)
	for i, c := range p.Palette {
		sources[i] = NewTube(capacity)
		sources[i].FillMerge(Segment{Color: c, Amount: capacity})
	}
	rng.Shuffle(n, func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})

	dests := make([]Tube, n, n+p.Spare)
	for i := range dests {
		dests[i] = NewTube(capacity)
	}

	for pass := 0; pass < p.Capacity; pass++ {
		for i := range sources {
			unit, ok := sources[i].Drain(1.0)
			if !ok {
				return nil, fmt.Errorf("%w: source tube %d empty on pass %d", ErrGenerationCorrupt, i, pass)
			}
			if !dests[i].FillMerge(unit) {
				return nil, fmt.Errorf("%w: destination tube %d full on pass %d", ErrGenerationCorrupt, i, pass)
			}
		}
		rng.Shuffle(n, func(i, j int) {
			dests[i], dests[j] = dests[j], dests[i]
		})
	}

	for range p.Spare {
		dests = append(dests, NewTube(capacity))
	}

	return NewLevel(index, capacity, dests), nil
}
