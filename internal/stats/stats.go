// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typetest/internal/model"
)

const (
	sparkChars    = " .:-=+*#%@"
	minCurveWidth = 10
	curveLabelW   = 10
)

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
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
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Resample shrinks values to at most width points by averaging buckets.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// CurveWidthFor returns the sparkline width that fits a terminal of totalWidth.
func CurveWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return 0
	}
	return max(totalWidth-curveLabelW-24, minCurveWidth)
}

// RenderSummary prints a summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalCPM, totalAcc float64
	var words, correctWords int
	bestWPM := 0.0
	for _, s := range sessions {
		wpm, cpm, acc := SessionMetrics(s.Correct, s.Incorrect, s.DurationMs)
		totalWPM += wpm
		totalCPM += cpm
		totalAcc += acc
		bestWPM = math.Max(bestWPM, wpm)
		words += s.Words
		correctWords += s.CorrectWords
	}
	count := float64(len(sessions))
	wordAcc := 0.0
	if words > 0 {
		wordAcc = float64(correctWords) / float64(words)
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Tests: %d", len(sessions)),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/count),
		fmt.Sprintf("Best WPM: %.2f", bestWPM),
		fmt.Sprintf("Avg CPM: %.2f", totalCPM/count),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		fmt.Sprintf("Word Accuracy: %.2f%% (%d/%d)", wordAcc*100, correctWords, words),
		"",
	}
	return writeLines(w, lines)
}

// RenderCurves prints moving-average sparklines for WPM and accuracy.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		wpm, _, acc := SessionMetrics(s.Correct, s.Incorrect, s.DurationMs)
		wpms[i] = wpm
		accs[i] = acc * 100
	}
	lines := []string{fmt.Sprintf("Learning Curves (window %d)", window)}
	lines = append(lines, curveLine("WPM", MovingAverage(wpms, window), width))
	lines = append(lines, curveLine("Accuracy", MovingAverage(accs, window), width))
	lines = append(lines, "")
	return writeLines(w, lines)
}

func curveLine(label string, values []float64, width int) string {
	values = Resample(values, width)
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return fmt.Sprintf("%-*s %s  [%.1f..%.1f]", curveLabelW, label, Sparkline(values), minVal, maxVal)
}

// RenderCharTable prints per-character aggregates, lowest accuracy first.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No character stats found.")
		return err
	}
	type row struct {
		char      string
		acc       float64
		latency   float64
		correct   int
		incorrect int
	}
	rows := make([]row, 0, len(aggs))
	for _, agg := range aggs {
		lat := 0.0
		if agg.LatencyCount > 0 {
			lat = float64(agg.LatencySumMs) / float64(agg.LatencyCount)
		}
		rows = append(rows, row{
			char:      agg.Char,
			acc:       accuracy(agg),
			latency:   lat,
			correct:   agg.Correct,
			incorrect: agg.Incorrect,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].acc == rows[j].acc {
			return rows[i].char < rows[j].char
		}
		return rows[i].acc < rows[j].acc
	})

	headers := []string{"Char", "Accuracy", "Avg Latency (ms)", "Correct", "Incorrect"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.char,
			fmt.Sprintf("%.2f%%", r.acc*100),
			fmt.Sprintf("%.1f", r.latency),
			fmt.Sprintf("%d", r.correct),
			fmt.Sprintf("%d", r.incorrect),
		})
	}
	lines := append([]string{"Per-Character (Windowed)"}, formatTable(headers, tableRows, map[int]bool{1: true, 2: true, 3: true, 4: true})...)
	return writeLines(w, append(lines, ""))
}

// RenderCharCurves prints per-character accuracy sparklines across sessions.
func RenderCharCurves(w io.Writer, sessions []model.SessionAggregate, perSession map[int64]map[string]model.CharAggregate, chars []string, window, width int) error {
	if len(chars) == 0 || len(sessions) == 0 {
		return nil
	}
	lines := []string{"Per-Character Accuracy"}
	for _, ch := range chars {
		series := make([]float64, len(sessions))
		for i, s := range sessions {
			if agg, ok := perSession[s.SessionID][ch]; ok {
				series[i] = accuracy(agg) * 100
			}
		}
		lines = append(lines, curveLine(fmt.Sprintf("Char %s", ch), MovingAverage(series, window), width))
	}
	return writeLines(w, append(lines, ""))
}

// RenderWordTable prints the word-by-word outcome of a single test.
func RenderWordTable(w io.Writer, words []model.WordResult) error {
	if len(words) == 0 {
		return nil
	}
	headers := []string{"#", "Target", "Typed", "Result", "Keys"}
	rows := make([][]string, 0, len(words))
	for _, word := range words {
		result := "miss"
		if word.Correct {
			result = "ok"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", word.Index+1),
			word.Target,
			word.Entered,
			result,
			fmt.Sprintf("%d", word.Keystrokes),
		})
	}
	lines := append([]string{"Last Test"}, formatTable(headers, rows, map[int]bool{0: true, 4: true})...)
	return writeLines(w, append(lines, ""))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
