package engine

import "strings"

// Level is an ordered set of tubes sharing one capacity.
// Tubes are addressed by index; the level owns them exclusively.
type Level struct {
	tubes      []Tube
	capacity   float64
	index      int
	gridFactor int
}

// NewLevel wraps an existing tube sequence. The grid factor is derived
// from the tube count.
func NewLevel(index int, capacity float64, tubes []Tube) *Level {
	return &Level{
		tubes:      tubes,
		capacity:   capacity,
		index:      index,
		gridFactor: SmallestPrimeFactor(len(tubes)),
	}
}

// Len returns the number of tubes.
func (l *Level) Len() int {
	return len(l.tubes)
}

// Tube returns the tube at index i, or nil when i is out of range.
func (l *Level) Tube(i int) *Tube {
	if i < 0 || i >= len(l.tubes) {
		return nil
	}
	return &l.tubes[i]
}

// Capacity returns the shared tube capacity.
func (l *Level) Capacity() float64 {
	return l.capacity
}

// Index returns the level index the layout was generated from.
func (l *Level) Index() int {
	return l.index
}

// GridFactor returns the smallest prime factor of the tube count.
func (l *Level) GridFactor() int {
	return l.gridFactor
}

// Rows returns the number of grid rows used to display the level.
func (l *Level) Rows() int {
	rows, _ := GridShape(len(l.tubes))
	return rows
}

// Columns returns the number of grid columns used to display the level.
func (l *Level) Columns() int {
	_, cols := GridShape(len(l.tubes))
	return cols
}

// Completion averages the completion fraction of every non-empty tube.
// A level without any content is reported as complete.
func (l *Level) Completion() float64 {
	sum := 0.0
	counted := 0
	for i := range l.tubes {
		t := &l.tubes[i]
		if t.IsEmpty() {
			continue
		}
		sum += t.CompletionFraction()
		counted++
	}
	if counted == 0 {
		return 1.0
	}
	return clampUnit(sum / float64(counted))
}

// Won reports whether every non-empty tube holds a single full color.
func (l *Level) Won() bool {
	return l.Completion() == 1.0
}

// Totals returns the total amount of every color across all tubes.
func (l *Level) Totals() map[Color]float64 {
	totals := make(map[Color]float64)
	for i := range l.tubes {
		for _, s := range l.tubes[i].segments {
			totals[s.Color] += s.Amount
		}
	}
	return totals
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	tubes := make([]Tube, len(l.tubes))
	for i := range l.tubes {
		tubes[i] = l.tubes[i].Clone()
	}
	c := *l
	c.tubes = tubes
	return &c
}

// String dumps one tube per line.
func (l *Level) String() string {
	var sb strings.Builder
	for i := range l.tubes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.tubes[i].String())
	}
	return sb.String()
}
