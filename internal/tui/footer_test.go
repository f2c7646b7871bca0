package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"

	"github.com/verte-zerg/typetest/internal/typing"
)

func TestRenderFooterFormats(t *testing.T) {
	m := &Model{
		session: typing.New([]string{"a", "b", "c", "d"}),
		keys:    newKeyMap(),
		help:    help.New(),
		hasLast: true,
		lastWPM: 72.4,
		lastAcc: 0.978,
		allWPM:  68.1,
		allAcc:  0.969,
	}
	m.session.HandleKey(typing.Char('a'))
	m.session.HandleKey(typing.Commit())
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Word 2/4", "Last 72.4 WPM", "97.8%", "All-time 68.1 WPM", "96.9%", "quit"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
