package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "typetest.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		stats := model.SessionStats{
			StartedAt:     start,
			EndedAt:       end,
			Lang:          "en",
			Words:         2,
			PunctSet:      ".,?!",
			WordListPath:  "dummy",
			CorrectWords:  1,
			CorrectKeys:   10,
			IncorrectKeys: 1,
			DurationMs:    end.Sub(start).Milliseconds(),
		}
		charStats := []model.CharStats{
			{Char: "a", Correct: 5, Incorrect: 0},
			{Char: "b", Correct: 4, Incorrect: 1},
		}
		words := []model.WordResult{
			{Index: 0, Target: "ab", Entered: "ab", Correct: true, Keystrokes: 2},
			{Index: 1, Target: "ba", Entered: "bb", Keystrokes: 2},
		}
		id, err := st.InsertSession(ctx, stats, charStats, words)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		Lang:        "en",
		Last:        2,
		CurveWindow: 1,
		Chars:       "a,b",
	}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].SessionID != ids[1] || report.Sessions[1].SessionID != ids[2] {
		t.Fatalf("unexpected session ids: %+v", report.Sessions)
	}
	if len(report.WindowSessionIDs) != 1 || report.WindowSessionIDs[0] != ids[2] {
		t.Fatalf("unexpected window session ids: %v", report.WindowSessionIDs)
	}
	if len(report.CharAggsAll) != 2 || len(report.CharAggsWindow) != 2 {
		t.Fatalf("expected char aggregates, got %+v / %+v", report.CharAggsAll, report.CharAggsWindow)
	}
	if len(report.Chars) != 2 || report.Chars[0] != "a" {
		t.Fatalf("unexpected chars: %v", report.Chars)
	}
	if report.CharPerSession[ids[2]]["b"].Incorrect != 1 {
		t.Fatalf("unexpected per-session char stats: %+v", report.CharPerSession)
	}
	if len(report.LastWords) != 2 || report.LastWords[1].Entered != "bb" {
		t.Fatalf("unexpected last words: %+v", report.LastWords)
	}
}

func TestBuildReportDefaultsToFrequentChars(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "typetest.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()
	_, err = st.InsertSession(ctx, model.SessionStats{
		StartedAt: time.Unix(0, 0),
		EndedAt:   time.Unix(10, 0),
		Lang:      "en",
	}, []model.CharStats{{Char: "x", Correct: 9}, {Char: "y", Correct: 1}}, nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	report, err := BuildReport(ctx, st, model.StatsConfig{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Chars) != 2 || report.Chars[0] != "x" {
		t.Fatalf("expected most frequent chars, got %v", report.Chars)
	}
}

func TestParseChars(t *testing.T) {
	got := ParseChars("a, b,ab")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected chars: %v", got)
	}
}
