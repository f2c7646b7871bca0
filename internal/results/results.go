// Package results turns the word logs of a finished typing session into
// statistics: keystroke accuracy, per-character latency and per-word rows.
package results

import (
	"sort"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/typing"
)

// Summary is the outcome of one typing test.
type Summary struct {
	StartedAt      time.Time
	EndedAt        time.Time
	Words          []model.WordResult
	Chars          []model.CharStats
	CorrectWords   int
	IncorrectWords int
	CorrectKeys    int
	IncorrectKeys  int
	Backspaces     int
}

// Meta carries practice settings stored alongside a summary.
type Meta struct {
	AttemptID string
	Config    model.Config
}

type charStat struct {
	correct      int
	incorrect    int
	latencySumMs int64
	latencyCount int64
}

// Compute replays every word's event log. A keystroke is correct when the
// typed rune matches the target rune at the replay position; latency is
// measured between consecutive correct keystrokes of the same word.
func Compute(words []typing.Word) Summary {
	var sum Summary
	chars := map[rune]*charStat{}
	entry := func(r rune) *charStat {
		cs, ok := chars[r]
		if !ok {
			cs = &charStat{}
			chars[r] = cs
		}
		return cs
	}

	for i, w := range words {
		target := []rune(w.Text())
		events := w.Events()
		var typed []rune
		var prevCorrectAt time.Time

		for _, e := range events {
			sum.observe(e.Time)
			switch e.Key.Kind {
			case typing.KeyBackspace:
				sum.Backspaces++
				if len(typed) > 0 {
					typed = typed[:len(typed)-1]
				}
			case typing.KeyChar:
				pos := len(typed)
				typed = append(typed, e.Key.Rune)
				if pos >= len(target) {
					sum.IncorrectKeys++
					continue
				}
				cs := entry(target[pos])
				if e.Key.Rune != target[pos] {
					sum.IncorrectKeys++
					cs.incorrect++
					continue
				}
				sum.CorrectKeys++
				cs.correct++
				if !prevCorrectAt.IsZero() {
					cs.latencySumMs += e.Time.Sub(prevCorrectAt).Milliseconds()
					cs.latencyCount++
				}
				prevCorrectAt = e.Time
			}
		}

		if w.Correct() {
			sum.CorrectWords++
		} else {
			sum.IncorrectWords++
		}
		sum.Words = append(sum.Words, model.WordResult{
			Index:      i,
			Target:     w.Text(),
			Entered:    w.EnteredString(),
			Correct:    w.Correct(),
			Keystrokes: len(events),
		})
	}

	sum.Chars = make([]model.CharStats, 0, len(chars))
	for r, cs := range chars {
		sum.Chars = append(sum.Chars, model.CharStats{
			Char:         string(r),
			Correct:      cs.correct,
			Incorrect:    cs.incorrect,
			LatencySumMs: cs.latencySumMs,
			LatencyCount: cs.latencyCount,
		})
	}
	sort.Slice(sum.Chars, func(i, j int) bool { return sum.Chars[i].Char < sum.Chars[j].Char })
	return sum
}

func (s *Summary) observe(t time.Time) {
	if s.StartedAt.IsZero() || t.Before(s.StartedAt) {
		s.StartedAt = t
	}
	if t.After(s.EndedAt) {
		s.EndedAt = t
	}
}

// Duration is the time between the first and last recorded keystroke.
func (s Summary) Duration() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Metrics returns WPM, CPM and keystroke accuracy.
func (s Summary) Metrics() (wpm, cpm, accuracy float64) {
	return stats.SessionMetrics(s.CorrectKeys, s.IncorrectKeys, s.Duration().Milliseconds())
}

// WordAccuracy is the share of committed words that matched their target.
func (s Summary) WordAccuracy() float64 {
	total := s.CorrectWords + s.IncorrectWords
	if total == 0 {
		return 0
	}
	return float64(s.CorrectWords) / float64(total)
}

// SessionStats converts the summary into the persisted session row.
func (s Summary) SessionStats(meta Meta) model.SessionStats {
	return model.SessionStats{
		AttemptID:      meta.AttemptID,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		Lang:           meta.Config.Lang,
		Words:          len(s.Words),
		CapsPct:        meta.Config.CapsPct,
		PunctPct:       meta.Config.PunctPct,
		PunctSet:       meta.Config.PunctSet,
		WordListPath:   meta.Config.WordListPath,
		CorrectWords:   s.CorrectWords,
		IncorrectWords: s.IncorrectWords,
		CorrectKeys:    s.CorrectKeys,
		IncorrectKeys:  s.IncorrectKeys,
		Backspaces:     s.Backspaces,
		DurationMs:     s.Duration().Milliseconds(),
	}
}
