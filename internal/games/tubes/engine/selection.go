package engine

// OutcomeKind classifies what a single activation did.
type OutcomeKind int

const (
	OutcomeIgnored     OutcomeKind = iota // Index outside the level
	OutcomeSelected                       // Idle -> Selected(i)
	OutcomeDeselected                     // Same tube activated twice
	OutcomeTransferred                    // Content moved from one tube to another
	OutcomeRejected                       // Transfer attempted, nothing moved
)

// String returns a human-readable name for the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeSelected:
		return "Selected"
	case OutcomeDeselected:
		return "Deselected"
	case OutcomeTransferred:
		return "Transferred"
	case OutcomeRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Outcome describes the result of Selection.Activate.
type Outcome struct {
	Kind  OutcomeKind
	From  int     // Source tube of a transfer attempt, -1 otherwise
	To    int     // Activated tube
	Moved Segment // Content that changed tubes; zero unless Transferred
}

// Selection is the two-step pour state machine: Idle or Selected(i).
// The zero value is Idle.
type Selection struct {
	index  int
	active bool
}

// Selected returns the pending tube index, if any.
func (s *Selection) Selected() (int, bool) {
	return s.index, s.active
}

// Idle reports whether no tube is pending.
func (s *Selection) Idle() bool {
	return !s.active
}

// Reset returns the machine to Idle and clears selection flags on level.
func (s *Selection) Reset(level *Level) {
	if s.active && level != nil {
		if t := level.Tube(s.index); t != nil {
			t.Selected = false
		}
	}
	s.index = 0
	s.active = false
}

// Activate feeds one "tube j activated" event into the machine.
// A second activation always returns the machine to Idle, whether or not
// the transfer succeeded. Out-of-range indices leave the state unchanged.
func (s *Selection) Activate(level *Level, j int) Outcome {
	if level == nil || level.Tube(j) == nil {
		return Outcome{Kind: OutcomeIgnored, From: -1, To: j}
	}

	if !s.active {
		s.index = j
		s.active = true
		level.Tube(j).Selected = true
		return Outcome{Kind: OutcomeSelected, From: -1, To: j}
	}

	i := s.index
	s.Reset(level)

	if i == j {
		return Outcome{Kind: OutcomeDeselected, From: -1, To: j}
	}

	moved, ok := Transfer(level, i, j)
	if !ok {
		return Outcome{Kind: OutcomeRejected, From: i, To: j}
	}
	return Outcome{Kind: OutcomeTransferred, From: i, To: j, Moved: moved}
}

// Transfer pours from tube i into tube j under the pouring rule.
// It drains as much as tube j could hold; content the destination refuses
// is merged back into the source, so a rejected transfer changes nothing.
func Transfer(level *Level, i, j int) (Segment, bool) {
	src, dst := level.Tube(i), level.Tube(j)
	if src == nil || dst == nil || i == j {
		return Segment{}, false
	}

	drained, ok := src.Drain(dst.RemainingCapacity())
	if !ok {
		return Segment{}, false
	}
	if dst.FillStrict(drained) {
		return drained, true
	}

	// The drained amount came from src, so it always fits back.
	src.FillMerge(drained)
	return Segment{}, false
}
