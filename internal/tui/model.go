// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/verte-zerg/typetest/internal/generator"
	"github.com/verte-zerg/typetest/internal/logging"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/results"
	statsPkg "github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/store"
	"github.com/verte-zerg/typetest/internal/typing"
)

// Model implements the Bubble Tea typing UI. A nil store disables persistence.
type Model struct {
	config  model.Config
	store   *store.Store
	gen     *generator.Generator
	pool    []string
	weakSet map[rune]struct{}

	session *typing.Session
	summary *results.Summary

	keys keyMap
	help help.Model

	width  int
	height int

	lastWPM float64
	lastAcc float64
	hasLast bool

	allWPM       float64
	allAcc       float64
	allCorrect   int
	allIncorrect int
	allDuration  int64
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overflowStyle    = incorrectStyle.Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
)

// NewModel constructs a typing TUI model. pool must not be empty.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator, pool []string, weakSet map[rune]struct{}) *Model {
	m := &Model{
		config:  cfg,
		store:   st,
		gen:     gen,
		pool:    pool,
		weakSet: weakSet,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.newSession()
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart), key.Matches(msg, m.keys.Again):
			m.newSession()
			return m, nil
		}
		if m.session.Complete() {
			return m, nil
		}
		for _, k := range toKeys(msg) {
			m.session.HandleKey(k)
		}
		if m.session.Complete() {
			m.finishSession()
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		if m.summary != nil {
			return m.renderResults()
		}
		return renderCells(buildCells(m.session))
	}
	contentWidth := max(int(float64(m.width)*0.70), 1)
	var content string
	if m.summary != nil {
		content = m.renderResults()
	} else {
		content = wrapCells(buildCells(m.session), contentWidth)
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footerLine
}

// Session exposes the active session for rendering collaborators and tests.
func (m *Model) Session() *typing.Session {
	return m.session
}

func (m *Model) newSession() {
	words := m.gen.Generate(m.pool, generator.Options{
		Count:      m.config.Words,
		CapsPct:    m.config.CapsPct,
		PunctPct:   m.config.PunctPct,
		PunctSet:   []rune(m.config.PunctSet),
		Weak:       m.focusSet(),
		WeakFactor: m.config.WeakFactor,
	})
	m.session = typing.New(words)
	m.summary = nil
	m.keys.Again.SetEnabled(false)
	logging.Debugf("new test with %d words", len(words))
}

func (m *Model) focusSet() map[rune]struct{} {
	if !m.config.FocusWeak {
		return nil
	}
	return m.weakSet
}

func (m *Model) finishSession() {
	sum := results.Compute(m.session.Words())
	m.summary = &sum
	m.keys.Again.SetEnabled(true)

	wpm, _, acc := sum.Metrics()
	attemptID := uuid.NewString()
	logging.Infof("test %s complete: %.1f wpm, %.1f%% accuracy, %d/%d words", attemptID, wpm, acc*100, sum.CorrectWords, len(sum.Words))

	m.lastWPM = wpm
	m.lastAcc = acc
	m.hasLast = true
	m.allCorrect += sum.CorrectKeys
	m.allIncorrect += sum.IncorrectKeys
	m.allDuration += sum.Duration().Milliseconds()
	m.recomputeAllTime()

	if m.store == nil {
		return
	}
	stats := sum.SessionStats(results.Meta{AttemptID: attemptID, Config: m.config})
	if _, err := m.store.InsertSession(context.Background(), stats, sum.Chars, sum.Words); err != nil {
		logging.Errorf("failed to save test %s: %v", attemptID, err)
	}
	if m.config.FocusWeak {
		m.refreshWeakSet()
	}
}

func (m *Model) refreshWeakSet() {
	aggs, err := m.store.GetWeakChars(context.Background(), m.config.WeakWindow, m.config.Lang)
	if err != nil {
		logging.Errorf("failed to load weak chars: %v", err)
		return
	}
	m.weakSet = statsPkg.SelectWeakChars(aggs, m.config.WeakTop)
	logging.Debugf("weak set refreshed: %d chars", len(m.weakSet))
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	sessions, err := m.store.ListSessions(context.Background(), model.StatsConfig{Lang: m.config.Lang})
	if err != nil {
		logging.Errorf("failed to load session stats: %v", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	last := sessions[len(sessions)-1]
	m.lastWPM, _, m.lastAcc = statsPkg.SessionMetrics(last.Correct, last.Incorrect, last.DurationMs)
	m.hasLast = true

	for _, s := range sessions {
		m.allCorrect += s.Correct
		m.allIncorrect += s.Incorrect
		m.allDuration += s.DurationMs
	}
	m.recomputeAllTime()
}

func (m *Model) recomputeAllTime() {
	m.allWPM, _, m.allAcc = statsPkg.SessionMetrics(m.allCorrect, m.allIncorrect, m.allDuration)
}

func (m *Model) renderResults() string {
	sum := m.summary
	wpm, cpm, acc := sum.Metrics()
	lines := []string{
		titleStyle.Render("Test complete"),
		"",
		fmt.Sprintf("%.1f WPM · %.0f CPM · %.1f%% accuracy", wpm, cpm, acc*100),
		fmt.Sprintf("Words %d/%d correct · %d backspaces · %.1fs", sum.CorrectWords, len(sum.Words), sum.Backspaces, sum.Duration().Seconds()),
		"",
	}
	var missed []string
	for _, w := range sum.Words {
		if !w.Correct {
			missed = append(missed, fmt.Sprintf("%s %s", incorrectStyle.Render(w.Entered), pendingStyle.Render("→ "+w.Target)))
		}
	}
	if len(missed) > 0 {
		lines = append(lines, "Missed:")
		lines = append(lines, missed...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Word %d/%d", m.session.Current()+1, m.session.Len())}
	if m.summary != nil {
		segments[0] = "Done"
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc*100))
	}
	segments = append(segments, fmt.Sprintf("All-time %.1f WPM · %.1f%%", m.allWPM, m.allAcc*100))
	return footerStyle.Render(strings.Join(segments, "  ")) + "  " + m.help.View(m.keys)
}
