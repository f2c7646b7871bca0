// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Lang         string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	FocusWeak    bool
	WeakTop      int
	WeakFactor   float64
	WeakWindow   int
	WordListPath string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	CurveWindow int
	Chars       string
}

// SessionStats captures a completed typing test.
type SessionStats struct {
	AttemptID      string
	StartedAt      time.Time
	EndedAt        time.Time
	Lang           string
	Words          int
	CapsPct        float64
	PunctPct       float64
	PunctSet       string
	WordListPath   string
	CorrectWords   int
	IncorrectWords int
	CorrectKeys    int
	IncorrectKeys  int
	Backspaces     int
	DurationMs     int64
}

// WordResult is the outcome of a single target word.
type WordResult struct {
	Index      int
	Target     string
	Entered    string
	Correct    bool
	Keystrokes int
}

// CharStats stores per-character stats for a session.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// CharAggregate aggregates character stats across sessions.
type CharAggregate struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID    int64
	AttemptID    string
	EndedAt      time.Time
	Words        int
	CorrectWords int
	Correct      int
	Incorrect    int
	DurationMs   int64
}
