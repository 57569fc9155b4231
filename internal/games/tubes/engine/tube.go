package engine

import (
	"math"
	"strconv"
	"strings"
)

// epsilon absorbs float rounding when comparing amounts against capacity.
const epsilon = 1e-9

// Segment is a contiguous run of one color inside a tube.
type Segment struct {
	Color  Color
	Amount float64
}

// Tube is a capacity-bounded stack of color segments.
// Index 0 of the stack is the bottom; the last segment is the top.
//
// Invariants kept by every mutating method:
//   - the total amount never exceeds the capacity
//   - adjacent segments never share a color
//   - zero-amount segments are never stored
type Tube struct {
	capacity float64
	segments []Segment

	// UI state read by the renderer. The engine only writes Selected.
	Hovered  bool
	Pressed  bool
	Selected bool

	// Shortcut is the keyboard symbol assigned by the input layer, 0 if none.
	Shortcut rune
}

// NewTube creates an empty tube with the given capacity.
func NewTube(capacity float64) Tube {
	return Tube{capacity: capacity}
}

// Capacity returns the maximum total amount the tube can hold.
func (t *Tube) Capacity() float64 {
	return t.capacity
}

// Amount returns the sum of all segment amounts.
func (t *Tube) Amount() float64 {
	total := 0.0
	for _, s := range t.segments {
		total += s.Amount
	}
	return total
}

// RemainingCapacity returns the free space left in the tube.
func (t *Tube) RemainingCapacity() float64 {
	return t.capacity - t.Amount()
}

// IsEmpty reports whether the tube holds no segments.
func (t *Tube) IsEmpty() bool {
	return len(t.segments) == 0
}

// IsFull reports whether the tube has no free space left.
func (t *Tube) IsFull() bool {
	return t.RemainingCapacity() <= epsilon
}

// Segments returns a copy of the segments, bottom to top.
func (t *Tube) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Top returns the topmost segment.
func (t *Tube) Top() (Segment, bool) {
	if len(t.segments) == 0 {
		return Segment{}, false
	}
	return t.segments[len(t.segments)-1], true
}

// MainColor returns the color with the largest floored total amount.
// Colors are counted across all their segments, not only contiguous ones.
// Ties go to the lowest palette index.
func (t *Tube) MainColor() (Color, bool) {
	if len(t.segments) == 0 {
		return 0, false
	}

	var totals [ColorCount]float64
	for _, s := range t.segments {
		if s.Color.Valid() {
			totals[s.Color] += s.Amount
		}
	}

	best := t.segments[0].Color
	bestCount := -1
	for c := Color(0); c < ColorCount; c++ {
		if totals[c] <= 0 {
			continue
		}
		count := int(totals[c] + epsilon)
		if count > bestCount {
			best = c
			bestCount = count
		}
	}
	return best, true
}

// ColorFraction returns the share of the full capacity occupied by color,
// clamped to [0, 1].
func (t *Tube) ColorFraction(color Color) float64 {
	if t.capacity <= 0 {
		return 0
	}
	amount := 0.0
	for _, s := range t.segments {
		if s.Color == color {
			amount += s.Amount
		}
	}
	return clampUnit(amount / t.capacity)
}

// CompletionFraction measures how close the tube is to a full single color.
// A tube without content counts as complete.
func (t *Tube) CompletionFraction() float64 {
	color, ok := t.MainColor()
	if !ok {
		return 1.0
	}
	return t.ColorFraction(color)
}

// FillMerge accepts the segment whenever capacity allows, merging it into
// the top segment when the colors match. Color rules do not apply.
// Returns false, leaving the tube untouched, if the segment would overflow.
func (t *Tube) FillMerge(s Segment) bool {
	if !t.fits(s) {
		return false
	}
	t.fill(s)
	return true
}

// FillStrict is FillMerge with the pouring rule: a non-empty tube only
// accepts a segment matching its top color.
func (t *Tube) FillStrict(s Segment) bool {
	if !t.fits(s) {
		return false
	}
	if top, ok := t.Top(); ok && top.Color != s.Color {
		return false
	}
	t.fill(s)
	return true
}

// Drain removes up to amount units from the top segment only. The drained
// amount never crosses into a differently colored segment below.
// Returns false if nothing could be drained, including for a NaN amount.
func (t *Tube) Drain(amount float64) (Segment, bool) {
	if !(amount > 0) || len(t.segments) == 0 {
		return Segment{}, false
	}

	last := len(t.segments) - 1
	top := t.segments[last]
	if amount >= top.Amount {
		t.segments = t.segments[:last]
		return top, true
	}

	t.segments[last].Amount -= amount
	return Segment{Color: top.Color, Amount: amount}, true
}

// Clone returns a deep copy of the tube.
func (t *Tube) Clone() Tube {
	c := *t
	c.segments = t.Segments()
	return c
}

// String renders the tube bottom to top, one code per segment, e.g. "[R2 B1]/4".
func (t *Tube) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range t.segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(s.Color.Char())
		sb.WriteString(formatAmount(s.Amount))
	}
	sb.WriteString("]/")
	sb.WriteString(formatAmount(t.capacity))
	return sb.String()
}

// fits reports whether s can be added without exceeding capacity by more
// than rounding error.
func (t *Tube) fits(s Segment) bool {
	if !(s.Amount >= 0) {
		return false
	}
	return s.Amount <= t.RemainingCapacity()+epsilon
}

// fill pushes s and trims rounding overflow off the top so the total
// never exceeds capacity.
func (t *Tube) fill(s Segment) {
	t.push(s)
	if over := t.Amount() - t.capacity; over > 0 {
		last := len(t.segments) - 1
		t.segments[last].Amount -= over
		if t.segments[last].Amount <= 0 {
			t.segments = t.segments[:last]
		}
	}
}

// push stores s on top, merging same-colored runs and dropping empty segments.
func (t *Tube) push(s Segment) {
	if s.Amount <= 0 {
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].Color == s.Color {
		t.segments[n-1].Amount += s.Amount
		return
	}
	t.segments = append(t.segments, s)
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
