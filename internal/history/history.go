// Package history keeps the ordered record of completed rounds for the
// lifetime of the process. Nothing is persisted across runs.
package history

import (
	"github.com/callum-jones19/terminal-typer/internal/model"
)

// History is an append-only sequence of round summaries. The zero value is
// ready to use.
type History struct {
	rounds []model.RoundSummary
}

// Record appends a completed round's summary. There is no removal.
func (h *History) Record(summary model.RoundSummary) {
	h.rounds = append(h.rounds, summary)
}

// Len returns the number of recorded rounds.
func (h *History) Len() int {
	return len(h.rounds)
}

// At returns the summary at the given index, oldest first. The second
// result is false when the index is out of range.
func (h *History) At(i int) (model.RoundSummary, bool) {
	if i < 0 || i >= len(h.rounds) {
		return model.RoundSummary{}, false
	}
	return h.rounds[i], true
}

// All returns a copy of the recorded rounds in play order.
func (h *History) All() []model.RoundSummary {
	return append([]model.RoundSummary(nil), h.rounds...)
}

// Last returns a copy of the most recent n rounds, oldest first. n larger
// than the history returns everything.
func (h *History) Last(n int) []model.RoundSummary {
	if n <= 0 {
		return nil
	}
	if n > len(h.rounds) {
		n = len(h.rounds)
	}
	return append([]model.RoundSummary(nil), h.rounds[len(h.rounds)-n:]...)
}
