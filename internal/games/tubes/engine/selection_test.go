package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testLevel(t *testing.T, tubes ...Tube) *Level {
	t.Helper()
	return NewLevel(0, 4, tubes)
}

func TestActivateTransfersTopRun(t *testing.T) {
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 2), seg(ColorBlue, 1)),
		NewTube(4),
	)
	var sel Selection

	out := sel.Activate(level, 0)
	if out.Kind != OutcomeSelected {
		t.Fatalf("first activation = %s, want Selected", out.Kind)
	}
	if !level.Tube(0).Selected {
		t.Error("tube 0 should be flagged selected")
	}

	out = sel.Activate(level, 1)
	if out.Kind != OutcomeTransferred {
		t.Fatalf("second activation = %s, want Transferred", out.Kind)
	}
	if out.Moved != seg(ColorBlue, 1) {
		t.Errorf("moved %+v, want blue 1", out.Moved)
	}
	if !sel.Idle() {
		t.Error("selection should be idle after a transfer")
	}
	if level.Tube(0).Selected {
		t.Error("tube 0 should no longer be flagged selected")
	}

	if diff := cmp.Diff([]Segment{seg(ColorRed, 2)}, level.Tube(0).Segments()); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Segment{seg(ColorBlue, 1)}, level.Tube(1).Segments()); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}

func TestActivateSameTubeDeselects(t *testing.T) {
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 2)),
		NewTube(4),
	)
	before := levelSegments(level)
	var sel Selection

	sel.Activate(level, 0)
	out := sel.Activate(level, 0)

	if out.Kind != OutcomeDeselected {
		t.Errorf("outcome = %s, want Deselected", out.Kind)
	}
	if !sel.Idle() {
		t.Error("selection should be idle")
	}
	if level.Tube(0).Selected {
		t.Error("tube 0 should not be flagged selected")
	}
	if diff := cmp.Diff(before, levelSegments(level)); diff != "" {
		t.Errorf("tubes changed (-want +got):\n%s", diff)
	}
}

func TestActivateColorMismatchRestoresSource(t *testing.T) {
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 1), seg(ColorGreen, 2)),
		tubeOf(t, 4, seg(ColorBlue, 1)),
	)
	before := levelSegments(level)
	var sel Selection

	sel.Activate(level, 0)
	out := sel.Activate(level, 1)

	if out.Kind != OutcomeRejected {
		t.Errorf("outcome = %s, want Rejected", out.Kind)
	}
	if !sel.Idle() {
		t.Error("selection should be idle after a rejected transfer")
	}
	if diff := cmp.Diff(before, levelSegments(level)); diff != "" {
		t.Errorf("tubes changed (-want +got):\n%s", diff)
	}
}

func TestActivatePartialPour(t *testing.T) {
	// Destination has room for one unit of the three-unit top run.
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 1), seg(ColorBlue, 3)),
		tubeOf(t, 4, seg(ColorBlue, 3)),
	)
	var sel Selection

	sel.Activate(level, 0)
	out := sel.Activate(level, 1)

	if out.Kind != OutcomeTransferred || out.Moved != seg(ColorBlue, 1) {
		t.Fatalf("outcome = %+v, want one unit of blue transferred", out)
	}
	if diff := cmp.Diff([]Segment{seg(ColorRed, 1), seg(ColorBlue, 2)}, level.Tube(0).Segments()); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	if !level.Tube(1).IsFull() {
		t.Errorf("destination should be full: %s", level.Tube(1).String())
	}
}

func TestActivateIntoFullTube(t *testing.T) {
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 1)),
		tubeOf(t, 4, seg(ColorRed, 4)),
	)
	before := levelSegments(level)
	var sel Selection

	sel.Activate(level, 0)
	if out := sel.Activate(level, 1); out.Kind != OutcomeRejected {
		t.Errorf("outcome = %s, want Rejected", out.Kind)
	}
	if diff := cmp.Diff(before, levelSegments(level)); diff != "" {
		t.Errorf("tubes changed (-want +got):\n%s", diff)
	}
}

func TestActivateFromEmptyTube(t *testing.T) {
	level := testLevel(t, NewTube(4), NewTube(4))
	var sel Selection

	sel.Activate(level, 0)
	if out := sel.Activate(level, 1); out.Kind != OutcomeRejected {
		t.Errorf("outcome = %s, want Rejected", out.Kind)
	}
	if !sel.Idle() {
		t.Error("selection should be idle")
	}
}

func TestActivateOutOfRange(t *testing.T) {
	level := testLevel(t, NewTube(4))
	var sel Selection

	if out := sel.Activate(level, 5); out.Kind != OutcomeIgnored {
		t.Errorf("outcome = %s, want Ignored", out.Kind)
	}
	if !sel.Idle() {
		t.Error("ignored activation should not select")
	}

	sel.Activate(level, 0)
	if out := sel.Activate(level, -1); out.Kind != OutcomeIgnored {
		t.Errorf("outcome = %s, want Ignored", out.Kind)
	}
	if i, ok := sel.Selected(); !ok || i != 0 {
		t.Errorf("Selected() = %d, %v; want 0, true", i, ok)
	}
}

func TestLevelCompletion(t *testing.T) {
	level := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 4)),
		tubeOf(t, 4, seg(ColorBlue, 2), seg(ColorGreen, 2)),
		NewTube(4),
	)

	// (1.0 + 0.5) / 2, empty tube excluded.
	if got := level.Completion(); got != 0.75 {
		t.Errorf("Completion() = %v, want 0.75", got)
	}
	if level.Won() {
		t.Error("level should not be won")
	}

	solved := testLevel(t,
		tubeOf(t, 4, seg(ColorRed, 4)),
		tubeOf(t, 4, seg(ColorBlue, 4)),
		NewTube(4),
	)
	if !solved.Won() {
		t.Errorf("solved level Completion() = %v, want 1", solved.Completion())
	}

	empty := testLevel(t, NewTube(4), NewTube(4))
	if got := empty.Completion(); got != 1.0 {
		t.Errorf("all-empty Completion() = %v, want 1", got)
	}
}
