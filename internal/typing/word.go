package typing

import "slices"

// Word is a target word and the keystrokes applied while it was active.
type Word struct {
	text    string
	events  []Event
	correct bool
}

// NewWord returns a word record with an empty log.
func NewWord(text string) Word {
	return Word{text: text}
}

// Text returns the target text.
func (w Word) Text() string {
	return w.text
}

// Events returns a copy of the event log in insertion order.
func (w Word) Events() []Event {
	return slices.Clone(w.events)
}

// Correct reports whether the last commit of this word matched the target.
func (w Word) Correct() bool {
	return w.correct
}

// Attempted reports whether any keystroke was recorded for the word.
func (w Word) Attempted() bool {
	return len(w.events) > 0
}

// EnteredString replays the event log and returns the resulting text.
// Backspace on empty text is a no-op here.
func (w Word) EnteredString() string {
	return string(replay(w.events))
}

func replay(events []Event) []rune {
	var out []rune
	for _, e := range events {
		switch e.Key.Kind {
		case KeyChar:
			out = append(out, e.Key.Rune)
		case KeyBackspace:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		}
	}
	return out
}
