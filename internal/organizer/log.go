package organizer

import "fmt"

// OutcomeKind classifies what happened to one record during Run.
type OutcomeKind string

const (
	OutcomeCopied    OutcomeKind = "copy"
	OutcomeMoved     OutcomeKind = "move"
	OutcomeExtracted OutcomeKind = "extract"
	OutcomeSkipped   OutcomeKind = "skip"
	OutcomeError     OutcomeKind = "error"
)

// Outcome records the result for one episode file. Outcomes keep the
// batch order, so rendering them yields a chronological operation log.
type Outcome struct {
	Kind   OutcomeKind
	Source string
	Target string
	Err    error
}

// String renders the outcome as a one-line log entry.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeCopied:
		return fmt.Sprintf("COPY: %s  -->  %s", o.Source, o.Target)
	case OutcomeMoved:
		return fmt.Sprintf("MOVE: %s  -->  %s", o.Source, o.Target)
	case OutcomeExtracted:
		return fmt.Sprintf("EXTRACT: %s  -->  %s", o.Source, o.Target)
	case OutcomeSkipped:
		return fmt.Sprintf("SKIP: %s (no season/episode info)", o.Source)
	case OutcomeError:
		return fmt.Sprintf("ERROR: %s  -->  %v", o.Source, o.Err)
	default:
		return fmt.Sprintf("%s: %s", o.Kind, o.Source)
	}
}

// Summary tallies outcomes by kind.
func Summary(outcomes []Outcome) map[OutcomeKind]int {
	counts := make(map[OutcomeKind]int)
	for _, o := range outcomes {
		counts[o.Kind]++
	}
	return counts
}
