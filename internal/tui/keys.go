package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typetest/internal/typing"
)

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Again   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "new test"),
		),
		Again: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "again"),
			key.WithDisabled(),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Again, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// toKeys converts a terminal key message into session keys.
func toKeys(msg tea.KeyMsg) []typing.Key {
	if msg.Alt {
		return []typing.Key{typing.Other()}
	}
	switch msg.Type {
	case tea.KeySpace, tea.KeyEnter:
		return []typing.Key{typing.Commit()}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []typing.Key{typing.Backspace()}
	case tea.KeyRunes:
		keys := make([]typing.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, typing.Char(r))
		}
		return keys
	default:
		return []typing.Key{typing.Other()}
	}
}
