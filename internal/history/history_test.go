package history

import (
	"testing"
	"time"

	"github.com/callum-jones19/terminal-typer/internal/model"
)

func summaryWithWPM(wpm float64) model.RoundSummary {
	return model.RoundSummary{
		PromptLen: 10,
		Correct:   10,
		Elapsed:   10 * time.Second,
		WPM:       wpm,
		Accuracy:  1.0,
	}
}

func TestRecordPreservesOrder(t *testing.T) {
	var h History
	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d", h.Len())
	}
	for _, wpm := range []float64{10, 20, 30} {
		h.Record(summaryWithWPM(wpm))
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 rounds, got %d", h.Len())
	}
	all := h.All()
	for i, want := range []float64{10, 20, 30} {
		if all[i].WPM != want {
			t.Fatalf("round %d: got %v WPM, want %v", i, all[i].WPM, want)
		}
	}
}

func TestAtBounds(t *testing.T) {
	var h History
	h.Record(summaryWithWPM(42))

	got, ok := h.At(0)
	if !ok || got.WPM != 42 {
		t.Fatalf("At(0) = %+v, %v", got, ok)
	}
	if _, ok := h.At(1); ok {
		t.Fatalf("expected At(1) out of range")
	}
	if _, ok := h.At(-1); ok {
		t.Fatalf("expected At(-1) out of range")
	}
}

func TestLastWindow(t *testing.T) {
	var h History
	for _, wpm := range []float64{10, 20, 30} {
		h.Record(summaryWithWPM(wpm))
	}
	last := h.Last(2)
	if len(last) != 2 || last[0].WPM != 20 || last[1].WPM != 30 {
		t.Fatalf("unexpected window: %+v", last)
	}
	if got := h.Last(10); len(got) != 3 {
		t.Fatalf("oversized window should return everything, got %d", len(got))
	}
	if got := h.Last(0); got != nil {
		t.Fatalf("Last(0) should be nil, got %+v", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	var h History
	h.Record(summaryWithWPM(10))
	all := h.All()
	all[0].WPM = 999
	got, _ := h.At(0)
	if got.WPM != 10 {
		t.Fatalf("All leaked internal storage: %+v", got)
	}
}
