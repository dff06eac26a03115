// Package stats contains statistics calculations and reporting.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/callum-jones19/terminal-typer/internal/engine"
	"github.com/callum-jones19/terminal-typer/internal/model"
)

// ErrNotCompleted reports a summarize call on a round that has not
// completed.
var ErrNotCompleted = errors.New("round not completed")

const sparkChars = " .:-=+*#%@"

// Summarize derives the immutable summary of a completed round.
//
// WPM uses the standard 5-characters-per-word convention. A zero elapsed
// duration (clock resolution coarser than the typing) clamps WPM to 0
// rather than letting an infinity escape.
func Summarize(rd engine.Round) (model.RoundSummary, error) {
	if rd.Phase != engine.PhaseCompleted {
		return model.RoundSummary{}, fmt.Errorf("summarize round %s: %w", rd.Phase, ErrNotCompleted)
	}
	correct := 0
	for _, ks := range rd.Typed {
		if ks.Correct {
			correct++
		}
	}
	elapsed := rd.FinishedAt.Sub(rd.StartedAt)
	promptLen := len(rd.Prompt)

	wpm := 0.0
	if minutes := elapsed.Minutes(); minutes > 0 {
		wpm = (float64(promptLen) / 5.0) / minutes
	}
	accuracy := 0.0
	if promptLen > 0 {
		accuracy = float64(correct) / float64(promptLen)
	}
	return model.RoundSummary{
		PromptLen: promptLen,
		Correct:   correct,
		Elapsed:   elapsed,
		WPM:       wpm,
		Accuracy:  accuracy,
	}, nil
}

// Aggregate summarizes a set of completed rounds.
type Aggregate struct {
	Rounds  int
	BestWPM float64
	AvgWPM  float64
	AvgAcc  float64
}

// AggregateRounds computes session-level aggregates over recorded rounds.
// Best and averages are derived here rather than stored by the history.
func AggregateRounds(rounds []model.RoundSummary) Aggregate {
	agg := Aggregate{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return agg
	}
	var totalWPM, totalAcc float64
	for _, r := range rounds {
		totalWPM += r.WPM
		totalAcc += r.Accuracy
		if r.WPM > agg.BestWPM {
			agg.BestWPM = r.WPM
		}
	}
	count := float64(len(rounds))
	agg.AvgWPM = totalWPM / count
	agg.AvgAcc = totalAcc / count
	return agg
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
