package engine

// EventKind classifies a board transition.
type EventKind uint8

const (
	EventSwapped   EventKind = iota + 1 // Index and Other exchanged runes
	EventDiscarded                      // Rune left the board through a void slot
	EventShuffled                       // board values were permuted
	EventSpawned                        // a new rune dropped in at Index
	EventFell                           // a rune moved down from Other to Index
	EventUpgraded                       // a merge produced Rune at Index
	EventRemoved                        // a merge consumed Rune at Index
	EventBlasted                        // a detonation destroyed Rune at Index
)

var eventNames = map[EventKind]string{
	EventSwapped:   "swapped",
	EventDiscarded: "discarded",
	EventShuffled:  "shuffled",
	EventSpawned:   "spawned",
	EventFell:      "fell",
	EventUpgraded:  "upgraded",
	EventRemoved:   "removed",
	EventBlasted:   "blasted",
}

// String returns the event name.
func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is a single transition emitted alongside the phase reports.
type Event struct {
	Kind  EventKind
	Index int
	Other int // source cell for EventSwapped and EventFell
	Rune  Rune
}

// Phase names a resolution step.
type Phase uint8

const (
	// PhaseGravity: runes fell and empty cells were refilled.
	PhaseGravity Phase = iota + 1
	// PhaseMatched: clusters were detected and flagged, nothing removed yet.
	PhaseMatched
	// PhaseMerged: the detected clusters were merged or detonated.
	PhaseMerged
	// PhaseSettled: no clusters remain and the engine is idle again.
	PhaseSettled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGravity:
		return "gravity"
	case PhaseMatched:
		return "matched"
	case PhaseMerged:
		return "merged"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Report describes one resolution step.
type Report struct {
	Phase      Phase
	Cycle      int
	Events     []Event
	Clusters   []Cluster
	ScoreDelta int
	// HighTier is set when a merge reached the high-tier threshold or a
	// detonation fired.
	HighTier bool
}

// Count returns how many events of kind k the report carries.
func (r Report) Count(k EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
