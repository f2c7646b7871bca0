package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/typing"
)

var start = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// steppedClock advances 200ms per keystroke.
func steppedClock() func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(200 * time.Millisecond)
		return now
	}
}

func play(targets []string, input string, backspaceAt map[int]bool) *typing.Session {
	s := typing.New(targets, typing.WithClock(steppedClock()))
	for i, r := range []rune(input) {
		if backspaceAt[i] {
			s.HandleKey(typing.Backspace())
		}
		s.HandleKey(typing.Char(r))
	}
	return s
}

func charStats(sum Summary, ch string) model.CharStats {
	for _, cs := range sum.Chars {
		if cs.Char == ch {
			return cs
		}
	}
	return model.CharStats{}
}

func TestComputeAllCorrect(t *testing.T) {
	s := play([]string{"cat", "dog"}, "cat dog ", nil)
	require.True(t, s.Complete())

	sum := Compute(s.Words())
	assert.Equal(t, 2, sum.CorrectWords)
	assert.Equal(t, 0, sum.IncorrectWords)
	assert.Equal(t, 6, sum.CorrectKeys)
	assert.Equal(t, 0, sum.IncorrectKeys)
	assert.Equal(t, start, sum.StartedAt)
	assert.Equal(t, 5*200*time.Millisecond, sum.Duration())
	require.Len(t, sum.Words, 2)
	assert.Equal(t, model.WordResult{Index: 1, Target: "dog", Entered: "dog", Correct: true, Keystrokes: 3}, sum.Words[1])

	a := charStats(sum, "a")
	assert.Equal(t, 1, a.Correct)
	assert.Equal(t, int64(200), a.LatencySumMs)
	assert.Equal(t, int64(1), a.LatencyCount)

	// First rune of each word carries no latency.
	assert.Equal(t, int64(0), charStats(sum, "d").LatencyCount)

	wpm, _, acc := sum.Metrics()
	assert.InDelta(t, 1.0, acc, 1e-9)
	assert.Greater(t, wpm, 0.0)
	assert.InDelta(t, 1.0, sum.WordAccuracy(), 1e-9)
}

func TestComputeMistakesAndBackspaces(t *testing.T) {
	// "cxt" with the x corrected: c, x, <bs>, a, t, then commit.
	s := typing.New([]string{"cat"}, typing.WithClock(steppedClock()))
	for _, k := range []typing.Key{
		typing.Char('c'), typing.Char('x'), typing.Backspace(), typing.Char('a'), typing.Char('t'), typing.Char('s'), typing.Commit(),
	} {
		s.HandleKey(k)
	}
	require.True(t, s.Complete())

	sum := Compute(s.Words())
	assert.Equal(t, 3, sum.CorrectKeys)
	assert.Equal(t, 2, sum.IncorrectKeys, "wrong rune plus overflow rune")
	assert.Equal(t, 1, sum.Backspaces)
	assert.Equal(t, 0, sum.CorrectWords)
	assert.Equal(t, 1, sum.IncorrectWords)
	assert.Equal(t, "cats", sum.Words[0].Entered)
	assert.Equal(t, 6, sum.Words[0].Keystrokes)
	assert.Equal(t, 1, charStats(sum, "a").Incorrect)
	assert.Equal(t, 1, charStats(sum, "a").Correct)
}

func TestComputeEmptyWords(t *testing.T) {
	sum := Compute(typing.New([]string{"x"}).Words())
	assert.Zero(t, sum.Duration())
	assert.Equal(t, 1, sum.IncorrectWords)
	wpm, cpm, acc := sum.Metrics()
	assert.Zero(t, wpm)
	assert.Zero(t, cpm)
	assert.Zero(t, acc)
}

func TestSessionStats(t *testing.T) {
	sum := Compute(play([]string{"go"}, "go ", nil).Words())
	st := sum.SessionStats(Meta{
		AttemptID: "abc",
		Config:    model.Config{Lang: "en", PunctSet: ".", WordListPath: "/w.txt", CapsPct: 0.25},
	})
	assert.Equal(t, "abc", st.AttemptID)
	assert.Equal(t, "en", st.Lang)
	assert.Equal(t, 1, st.Words)
	assert.Equal(t, 1, st.CorrectWords)
	assert.Equal(t, 2, st.CorrectKeys)
	assert.Equal(t, int64(200), st.DurationMs)
	assert.Equal(t, "/w.txt", st.WordListPath)
	assert.InDelta(t, 0.25, st.CapsPct, 1e-9)
}
