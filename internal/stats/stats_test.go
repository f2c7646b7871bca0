package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/typetest/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm, cpm, acc := SessionMetrics(250, 50, 60000)
	if wpm != 50 || cpm != 250 {
		t.Fatalf("unexpected speed: wpm=%v cpm=%v", wpm, cpm)
	}
	if math.Abs(acc-250.0/300.0) > 1e-9 {
		t.Fatalf("unexpected accuracy: %v", acc)
	}
	if wpm, cpm, acc := SessionMetrics(10, 0, 0); wpm != 0 || cpm != 0 || acc != 0 {
		t.Fatalf("expected zeros for zero duration")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	same := MovingAverage([]float64{1, 5}, 1)
	if same[0] != 1 || same[1] != 5 {
		t.Fatalf("expected copy for window 1, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestResample(t *testing.T) {
	got := Resample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("unexpected resample: %v", got)
	}
	if got := Resample([]float64{1, 2}, 5); len(got) != 2 {
		t.Fatalf("expected no resample when shorter than width")
	}
}

func TestRenderSummaryAndCurves(t *testing.T) {
	sessions := []model.SessionAggregate{
		{SessionID: 1, Words: 10, CorrectWords: 8, Correct: 100, Incorrect: 10, DurationMs: 60000},
		{SessionID: 2, Words: 10, CorrectWords: 10, Correct: 200, Incorrect: 0, DurationMs: 60000},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sessions); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if err := RenderCurves(&buf, sessions, 2, 20); err != nil {
		t.Fatalf("render curves: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Tests: 2", "Best WPM: 40.00", "Word Accuracy: 90.00% (18/20)", "Learning Curves", "WPM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestRenderWordTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderWordTable(&buf, []model.WordResult{
		{Index: 0, Target: "cat", Entered: "cat", Correct: true, Keystrokes: 3},
		{Index: 1, Target: "dog", Entered: "dgo", Keystrokes: 5},
	})
	if err != nil {
		t.Fatalf("render words: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Last Test") || !strings.Contains(out, "dgo") || !strings.Contains(out, "miss") {
		t.Fatalf("unexpected word table:\n%s", out)
	}
}

func TestRenderCharTableOrder(t *testing.T) {
	var buf bytes.Buffer
	err := RenderCharTable(&buf, []model.CharAggregate{
		{Char: "a", Correct: 10},
		{Char: "b", Correct: 1, Incorrect: 1, LatencySumMs: 300, LatencyCount: 2},
	})
	if err != nil {
		t.Fatalf("render chars: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[2], "b") {
		t.Fatalf("expected weakest char first, got %q", lines[2])
	}
	if !strings.Contains(lines[2], "150.0") {
		t.Fatalf("expected latency in row, got %q", lines[2])
	}
}
