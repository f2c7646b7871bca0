// Package typing implements the word-by-word typing test state machine.
//
// A Session owns one Word per target word. Keys are fed one at a time
// through Session.HandleKey, which appends to the active word's event log,
// keeps the in-progress text in sync, and moves between words on commit
// and on backspace at the start of a word.
package typing

import (
	"fmt"
	"time"
	"unicode"
)

// KeyKind classifies a keystroke.
type KeyKind uint8

const (
	// KeyOther is any key the session ignores.
	KeyOther KeyKind = iota
	// KeyChar is a printable character.
	KeyChar
	// KeyBackspace deletes one character or retreats to the previous word.
	KeyBackspace
	// KeyCommit ends the active word (space or newline).
	KeyCommit
)

// Key is a classified keystroke. Rune is only meaningful for KeyChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char classifies a rune read from the terminal.
func Char(r rune) Key {
	switch {
	case r == ' ' || r == '\n':
		return Commit()
	case unicode.IsControl(r):
		return Other()
	default:
		return Key{Kind: KeyChar, Rune: r}
	}
}

// Backspace returns the backspace key.
func Backspace() Key {
	return Key{Kind: KeyBackspace}
}

// Commit returns the word-commit key.
func Commit() Key {
	return Key{Kind: KeyCommit}
}

// Other returns a key the session ignores.
func Other() Key {
	return Key{Kind: KeyOther}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KeyBackspace:
		return "Backspace"
	case KeyCommit:
		return "Commit"
	default:
		return "Other"
	}
}

// Event is a keystroke recorded against a word.
type Event struct {
	Time time.Time
	Key  Key
}
