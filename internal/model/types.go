// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	Lang     string
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet string
	WordList string
	Text     string
}

// RoundSummary is the immutable record of one completed round.
type RoundSummary struct {
	PromptLen int
	Correct   int
	Elapsed   time.Duration
	WPM       float64
	Accuracy  float64
}
