package stats

import (
	"fmt"
	"io"

	"github.com/callum-jones19/terminal-typer/internal/model"
)

// recapTrendWindow is the moving-average window for the smoothed WPM trend.
const recapTrendWindow = 5

// WriteRecap prints a plain-text recap of the session's completed rounds,
// ordered as they were played.
func WriteRecap(w io.Writer, rounds []model.RoundSummary) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds completed.")
		return err
	}

	if _, err := fmt.Fprintln(w, "Session recap"); err != nil {
		return err
	}

	headers := []string{"Round", "WPM", "Accuracy", "Time", "Chars", "Errors"}
	tableRows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%.1f%%", r.Accuracy*100),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			fmt.Sprintf("%d", r.PromptLen),
			fmt.Sprintf("%d", r.PromptLen-r.Correct),
		})
	}
	rightAlign := make(map[int]bool, len(headers))
	for i := range headers {
		rightAlign[i] = true
	}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	agg := AggregateRounds(rounds)
	if _, err := fmt.Fprintf(w, "Rounds: %d  Best: %.1f WPM  Avg: %.1f WPM · %.1f%%\n",
		agg.Rounds, agg.BestWPM, agg.AvgWPM, agg.AvgAcc*100); err != nil {
		return err
	}

	if len(rounds) >= 2 {
		wpms := make([]float64, len(rounds))
		for i, r := range rounds {
			wpms[i] = r.WPM
		}
		smoothed := MovingAverage(wpms, recapTrendWindow)
		if _, err := fmt.Fprintf(w, "WPM trend: [%s]  smoothed: [%s]\n",
			Sparkline(wpms), Sparkline(smoothed)); err != nil {
			return err
		}
	}
	return nil
}
