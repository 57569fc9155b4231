package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tubeOf builds a tube by merging segments bottom to top.
func tubeOf(t *testing.T, capacity float64, segs ...Segment) Tube {
	t.Helper()
	tube := NewTube(capacity)
	for _, s := range segs {
		if !tube.FillMerge(s) {
			t.Fatalf("tubeOf: segment %+v overflows capacity %v", s, capacity)
		}
	}
	return tube
}

func seg(c Color, amount float64) Segment {
	return Segment{Color: c, Amount: amount}
}

// checkInvariants fails the test if the tube breaks a storage invariant.
func checkInvariants(t *testing.T, tube *Tube) {
	t.Helper()
	if tube.Amount() > tube.Capacity() {
		t.Errorf("amount %v exceeds capacity %v", tube.Amount(), tube.Capacity())
	}
	segs := tube.Segments()
	for i, s := range segs {
		if s.Amount <= 0 {
			t.Errorf("segment %d has non-positive amount %v", i, s.Amount)
		}
		if i > 0 && segs[i-1].Color == s.Color {
			t.Errorf("segments %d and %d share color %s", i-1, i, s.Color)
		}
	}
}

func TestTubeAmounts(t *testing.T) {
	tube := tubeOf(t, 4, seg(ColorRed, 2), seg(ColorBlue, 1))

	if got := tube.Amount(); got != 3 {
		t.Errorf("Amount() = %v, want 3", got)
	}
	if got := tube.RemainingCapacity(); got != 1 {
		t.Errorf("RemainingCapacity() = %v, want 1", got)
	}
	if tube.IsEmpty() || tube.IsFull() {
		t.Error("tube should be neither empty nor full")
	}
}

func TestFillMerge(t *testing.T) {
	tests := []struct {
		name   string
		start  []Segment
		in     Segment
		ok     bool
		expect []Segment
	}{
		{
			name:   "empty tube",
			in:     seg(ColorRed, 1),
			ok:     true,
			expect: []Segment{seg(ColorRed, 1)},
		},
		{
			name:   "merges matching top",
			start:  []Segment{seg(ColorRed, 1)},
			in:     seg(ColorRed, 2),
			ok:     true,
			expect: []Segment{seg(ColorRed, 3)},
		},
		{
			name:   "appends different color",
			start:  []Segment{seg(ColorRed, 1)},
			in:     seg(ColorBlue, 1),
			ok:     true,
			expect: []Segment{seg(ColorRed, 1), seg(ColorBlue, 1)},
		},
		{
			name:   "rejects overflow",
			start:  []Segment{seg(ColorRed, 3)},
			in:     seg(ColorRed, 2),
			ok:     false,
			expect: []Segment{seg(ColorRed, 3)},
		},
		{
			name:   "fills exactly to capacity",
			start:  []Segment{seg(ColorRed, 3)},
			in:     seg(ColorBlue, 1),
			ok:     true,
			expect: []Segment{seg(ColorRed, 3), seg(ColorBlue, 1)},
		},
		{
			name:   "zero amount is a no-op",
			start:  []Segment{seg(ColorRed, 1)},
			in:     seg(ColorBlue, 0),
			ok:     true,
			expect: []Segment{seg(ColorRed, 1)},
		},
		{
			name:   "negative amount rejected",
			start:  []Segment{seg(ColorRed, 1)},
			in:     seg(ColorRed, -1),
			ok:     false,
			expect: []Segment{seg(ColorRed, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tube := tubeOf(t, 4, tt.start...)
			if got := tube.FillMerge(tt.in); got != tt.ok {
				t.Errorf("FillMerge(%+v) = %v, want %v", tt.in, got, tt.ok)
			}
			if diff := cmp.Diff(tt.expect, tube.Segments()); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			checkInvariants(t, &tube)
		})
	}
}

func TestFillStrict(t *testing.T) {
	tests := []struct {
		name   string
		start  []Segment
		in     Segment
		ok     bool
		expect []Segment
	}{
		{
			name:   "empty tube accepts any color",
			in:     seg(ColorTeal, 2),
			ok:     true,
			expect: []Segment{seg(ColorTeal, 2)},
		},
		{
			name:   "matching top merges",
			start:  []Segment{seg(ColorBlue, 1), seg(ColorTeal, 1)},
			in:     seg(ColorTeal, 1),
			ok:     true,
			expect: []Segment{seg(ColorBlue, 1), seg(ColorTeal, 2)},
		},
		{
			name:   "mismatched top rejected",
			start:  []Segment{seg(ColorTeal, 1)},
			in:     seg(ColorRed, 1),
			ok:     false,
			expect: []Segment{seg(ColorTeal, 1)},
		},
		{
			name:   "matching top but no room",
			start:  []Segment{seg(ColorTeal, 3)},
			in:     seg(ColorTeal, 2),
			ok:     false,
			expect: []Segment{seg(ColorTeal, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tube := tubeOf(t, 4, tt.start...)
			if got := tube.FillStrict(tt.in); got != tt.ok {
				t.Errorf("FillStrict(%+v) = %v, want %v", tt.in, got, tt.ok)
			}
			if diff := cmp.Diff(tt.expect, tube.Segments()); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name    string
		start   []Segment
		amount  float64
		ok      bool
		drained Segment
		expect  []Segment
	}{
		{
			name:   "empty tube",
			amount: 1,
			ok:     false,
			expect: []Segment{},
		},
		{
			name:   "zero amount",
			start:  []Segment{seg(ColorRed, 2)},
			amount: 0,
			ok:     false,
			expect: []Segment{seg(ColorRed, 2)},
		},
		{
			name:   "negative amount",
			start:  []Segment{seg(ColorRed, 2)},
			amount: -1,
			ok:     false,
			expect: []Segment{seg(ColorRed, 2)},
		},
		{
			name:    "whole top segment",
			start:   []Segment{seg(ColorRed, 2), seg(ColorBlue, 1)},
			amount:  1,
			ok:      true,
			drained: seg(ColorBlue, 1),
			expect:  []Segment{seg(ColorRed, 2)},
		},
		{
			name:    "never crosses a color boundary",
			start:   []Segment{seg(ColorRed, 2), seg(ColorBlue, 1)},
			amount:  4,
			ok:      true,
			drained: seg(ColorBlue, 1),
			expect:  []Segment{seg(ColorRed, 2)},
		},
		{
			name:    "partial top segment",
			start:   []Segment{seg(ColorRed, 1), seg(ColorBlue, 3)},
			amount:  1,
			ok:      true,
			drained: seg(ColorBlue, 1),
			expect:  []Segment{seg(ColorRed, 1), seg(ColorBlue, 2)},
		},
		{
			name:   "NaN amount",
			start:  []Segment{seg(ColorRed, 2)},
			amount: math.NaN(),
			ok:     false,
			expect: []Segment{seg(ColorRed, 2)},
		},
		{
			name:    "infinite amount takes the top run",
			start:   []Segment{seg(ColorRed, 2), seg(ColorBlue, 1)},
			amount:  math.Inf(1),
			ok:      true,
			drained: seg(ColorBlue, 1),
			expect:  []Segment{seg(ColorRed, 2)},
		},
		{
			name:    "fractional split",
			start:   []Segment{seg(ColorGreen, 1)},
			amount:  0.25,
			ok:      true,
			drained: seg(ColorGreen, 0.25),
			expect:  []Segment{seg(ColorGreen, 0.75)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tube := tubeOf(t, 4, tt.start...)
			drained, ok := tube.Drain(tt.amount)
			if ok != tt.ok {
				t.Fatalf("Drain(%v) ok = %v, want %v", tt.amount, ok, tt.ok)
			}
			if ok && drained != tt.drained {
				t.Errorf("Drain(%v) = %+v, want %+v", tt.amount, drained, tt.drained)
			}
			if diff := cmp.Diff(tt.expect, tube.Segments()); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			checkInvariants(t, &tube)
		})
	}
}

func TestDrainNeverExceedsRequest(t *testing.T) {
	tube := tubeOf(t, 4, seg(ColorRed, 2), seg(ColorBlue, 1))
	request := 1 - 5e-10

	drained, ok := tube.Drain(request)
	if !ok {
		t.Fatal("Drain returned nothing")
	}
	if drained != seg(ColorBlue, request) {
		t.Errorf("Drain(%v) = %+v, want exactly the requested amount", request, drained)
	}
	segs := tube.Segments()
	if len(segs) != 2 || segs[1].Color != ColorBlue || segs[1].Amount != 1-request {
		t.Errorf("segments = %+v, want a blue remainder of %v", segs, 1-request)
	}
}

func TestFillTrimsRoundingOverflow(t *testing.T) {
	over := 4 + 5e-10

	tests := []struct {
		name  string
		start []Segment
		in    Segment
		fill  func(*Tube, Segment) bool
	}{
		{"merge into empty", nil, seg(ColorRed, over), (*Tube).FillMerge},
		{"strict into empty", nil, seg(ColorRed, over), (*Tube).FillStrict},
		{"merge onto same color", []Segment{seg(ColorRed, 1)}, seg(ColorRed, over-1), (*Tube).FillMerge},
		{"append new color", []Segment{seg(ColorRed, 1)}, seg(ColorBlue, over-1), (*Tube).FillMerge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tube := tubeOf(t, 4, tt.start...)
			if !tt.fill(&tube, tt.in) {
				t.Fatalf("fill of %+v rejected", tt.in)
			}
			if tube.Amount() > tube.Capacity() {
				t.Errorf("Amount() = %v exceeds capacity %v", tube.Amount(), tube.Capacity())
			}
			if tube.RemainingCapacity() < 0 {
				t.Errorf("RemainingCapacity() = %v, want >= 0", tube.RemainingCapacity())
			}
			if !tube.IsFull() {
				t.Errorf("tube should be full: %s", tube.String())
			}
			checkInvariants(t, &tube)
		})
	}

	tube := NewTube(4)
	if tube.FillMerge(seg(ColorRed, 4+1e-6)) {
		t.Error("overflow beyond rounding error should be rejected")
	}
	if tube.FillMerge(seg(ColorRed, math.NaN())) {
		t.Error("NaN amount should be rejected")
	}
	if !tube.IsEmpty() {
		t.Errorf("rejected fills changed the tube: %s", tube.String())
	}
}

func TestDrainFillRoundTrip(t *testing.T) {
	start := []Segment{seg(ColorRed, 1.5), seg(ColorBlue, 0.5), seg(ColorRed, 1.75)}

	for _, x := range []float64{0.25, 0.5, 1, 1.75, 2, 3.5, 100} {
		tube := tubeOf(t, 4, start...)
		before := tube.Segments()

		drained, ok := tube.Drain(x)
		if !ok {
			t.Fatalf("Drain(%v) unexpectedly empty", x)
		}
		if !tube.FillMerge(drained) {
			t.Fatalf("FillMerge after Drain(%v) rejected %+v", x, drained)
		}
		if diff := cmp.Diff(before, tube.Segments()); diff != "" {
			t.Errorf("round trip with x=%v changed tube (-want +got):\n%s", x, diff)
		}
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	amounts := []float64{0.25, 0.5, 1, 2, 3}
	colors := Palette(3)

	tube := NewTube(4)
	for i := 0; i < 2000; i++ {
		s := seg(colors[rng.Intn(len(colors))], amounts[rng.Intn(len(amounts))])
		switch rng.Intn(3) {
		case 0:
			tube.FillMerge(s)
		case 1:
			tube.FillStrict(s)
		default:
			tube.Drain(s.Amount)
		}
		checkInvariants(t, &tube)
		if t.Failed() {
			t.Fatalf("invariant broken after operation %d: %s", i, tube.String())
		}
	}
}

func TestMainColor(t *testing.T) {
	tests := []struct {
		name  string
		segs  []Segment
		want  Color
		found bool
	}{
		{name: "empty", found: false},
		{
			name:  "single color",
			segs:  []Segment{seg(ColorRed, 2)},
			want:  ColorRed,
			found: true,
		},
		{
			name:  "counts non-contiguous runs",
			segs:  []Segment{seg(ColorRed, 1), seg(ColorBlue, 2), seg(ColorRed, 2)},
			want:  ColorRed,
			found: true,
		},
		{
			name:  "tie goes to lowest palette index",
			segs:  []Segment{seg(ColorRed, 2), seg(ColorBlue, 2)},
			want:  ColorBlue,
			found: true,
		},
		{
			name:  "floored amounts tie",
			segs:  []Segment{seg(ColorRed, 1.75), seg(ColorBlue, 1)},
			want:  ColorBlue,
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tube := tubeOf(t, 5, tt.segs...)
			got, ok := tube.MainColor()
			if ok != tt.found {
				t.Fatalf("MainColor() found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("MainColor() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFractions(t *testing.T) {
	empty := NewTube(4)
	if got := empty.CompletionFraction(); got != 1.0 {
		t.Errorf("empty CompletionFraction() = %v, want 1", got)
	}

	mixed := tubeOf(t, 4, seg(ColorRed, 2), seg(ColorBlue, 1))
	if got := mixed.ColorFraction(ColorRed); got != 0.5 {
		t.Errorf("ColorFraction(red) = %v, want 0.5", got)
	}
	if got := mixed.ColorFraction(ColorGreen); got != 0 {
		t.Errorf("ColorFraction(green) = %v, want 0", got)
	}
	if got := mixed.CompletionFraction(); got != 0.5 {
		t.Errorf("CompletionFraction() = %v, want 0.5", got)
	}

	full := tubeOf(t, 4, seg(ColorRed, 4))
	if got := full.CompletionFraction(); got != 1.0 {
		t.Errorf("full CompletionFraction() = %v, want 1", got)
	}

	// Thirds do not sum exactly; the result must still stay in range.
	thirds := tubeOf(t, 1, seg(ColorRed, 1.0/3), seg(ColorBlue, 1.0/3), seg(ColorRed, 1.0/3))
	if got := thirds.ColorFraction(ColorRed); got < 0 || got > 1 {
		t.Errorf("ColorFraction out of range: %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tube := tubeOf(t, 4, seg(ColorRed, 2))
	clone := tube.Clone()
	clone.FillMerge(seg(ColorRed, 1))

	if tube.Amount() != 2 {
		t.Errorf("original changed after clone mutation: %s", tube.String())
	}
}

func TestTubeString(t *testing.T) {
	tube := tubeOf(t, 4, seg(ColorRed, 2), seg(ColorBlue, 1))
	if got, want := tube.String(), "[R2 B1]/4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
