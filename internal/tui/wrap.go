package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typetest/internal/typing"
)

type cell struct {
	s       string
	width   int
	isSpace bool
}

func newCell(r rune, style styleFunc) cell {
	return cell{s: style(string(r)), width: runewidth.RuneWidth(r), isSpace: r == ' '}
}

type styleFunc func(...string) string

// buildCells lays out every word of an in-progress session. Committed words
// show their entered text diffed against the target, the active word shows
// the in-progress text and the cursor, and untouched words are pending.
func buildCells(s *typing.Session) []cell {
	var out []cell
	progress := []rune(s.Progress())
	cursorAfterWord := false
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			style := pendingStyle.Render
			if cursorAfterWord {
				style = cursorStyle.Render
				cursorAfterWord = false
			}
			out = append(out, newCell(' ', style))
		}
		w := s.Word(i)
		target := []rune(w.Text())
		switch {
		case i == s.Current():
			out = append(out, wordCells(target, progress, true)...)
			cursorAfterWord = len(progress) >= len(target)
		case w.Attempted():
			out = append(out, wordCells(target, []rune(w.EnteredString()), false)...)
		default:
			for _, r := range target {
				out = append(out, newCell(r, pendingStyle.Render))
			}
		}
	}
	return out
}

// wordCells renders target against typed. Mistyped positions keep the
// target rune; runes typed past the end of the target are appended.
func wordCells(target, typed []rune, active bool) []cell {
	n := max(len(target), len(typed))
	out := make([]cell, 0, n)
	for j := 0; j < n; j++ {
		switch {
		case j < len(typed) && j < len(target):
			style := correctStyle.Render
			if typed[j] != target[j] {
				style = incorrectStyle.Render
			}
			out = append(out, newCell(target[j], style))
		case j < len(typed):
			out = append(out, newCell(typed[j], overflowStyle.Render))
		case !active:
			out = append(out, newCell(target[j], incorrectStyle.Render))
		case j == len(typed):
			out = append(out, newCell(target[j], cursorStyle.Render))
		default:
			out = append(out, newCell(target[j], currentWordStyle.Render))
		}
	}
	return out
}

func renderCells(cells []cell) string {
	var b strings.Builder
	for _, item := range cells {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapCells breaks lines at spaces so no line exceeds width columns.
// A word longer than width is split.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var out strings.Builder
	line := make([]cell, 0, len(cells))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(cells); {
		item := cells[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace {
				out.WriteString(renderCells(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				i++
				continue
			}
			if lastSpaceIdx >= 0 {
				out.WriteString(renderCells(line[:lastSpaceIdx]))
				line = append([]cell{}, line[lastSpaceIdx+1:]...)
			} else {
				out.WriteString(renderCells(line))
				line = line[:0]
			}
			out.WriteRune('\n')
			lineWidth = lineWidthOf(line)
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderCells(line))
	return out.String()
}

func lineWidthOf(line []cell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []cell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
