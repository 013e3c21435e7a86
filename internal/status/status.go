// Package status carries the one-shot result of a background operation to
// the presentation layer. Outcomes are tagged explicitly rather than sniffed
// out of display strings.
package status

import "sync"

// Kind classifies an outcome for rendering.
type Kind int

const (
	// Info is the neutral default (ready, in-progress).
	Info Kind = iota
	// Success means the operation completed.
	Success
	// Warning means the operation completed with a caveat the user should see.
	Warning
	// Error means the operation failed.
	Error
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the single message delivered per operation.
type Outcome struct {
	ID      string
	Kind    Kind
	Message string
}

// Reporter is a single-producer, single-consumer, one-shot handoff. The
// producer calls Report at most effectively once (later calls are dropped);
// the consumer polls non-blockingly once per render pass and drops the
// reporter after consumption.
type Reporter struct {
	ch   chan Outcome
	once sync.Once
}

// NewReporter creates a reporter for one pending operation.
func NewReporter() *Reporter {
	return &Reporter{ch: make(chan Outcome, 1)}
}

// Report delivers the outcome. Only the first call has any effect.
func (r *Reporter) Report(o Outcome) {
	r.once.Do(func() {
		r.ch <- o
	})
}

// Poll returns the outcome if one has been delivered. It never blocks.
func (r *Reporter) Poll() (Outcome, bool) {
	select {
	case o := <-r.ch:
		return o, true
	default:
		return Outcome{}, false
	}
}
