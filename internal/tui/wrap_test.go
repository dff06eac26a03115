package tui

import (
	"testing"

	"github.com/callum-jones19/terminal-typer/internal/engine"
)

func keystrokesFor(target, typed string) []engine.Keystroke {
	targetRunes := []rune(target)
	out := make([]engine.Keystroke, 0, len(typed))
	for i, r := range []rune(typed) {
		out = append(out, engine.Keystroke{Typed: r, Correct: r == targetRunes[i]})
	}
	return out
}

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	typed := keystrokesFor("ab", "a")
	cursorIndex := len(typed)

	runes := buildStyledRunes(target, typed, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	target := []rune("a")
	typed := keystrokesFor("a", "a")
	cursorIndex := -1

	runes := buildStyledRunes(target, typed, cursorIndex)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	typed := keystrokesFor("ab", "ax")
	cursorIndex := len(typed)

	runes := buildStyledRunes(target, typed, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	typed := keystrokesFor("one two", "o")
	cursorIndex := len(typed)

	runes := buildStyledRunes(target, typed, cursorIndex)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[1].s != currentWordStyle.Render("n") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	typed := keystrokesFor("a b", "ax")
	cursorIndex := len(typed)

	runes := buildStyledRunes(target, typed, cursorIndex)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}
