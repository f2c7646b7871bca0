package typing

import (
	"slices"
	"time"
)

// State is the coarse state of a session.
type State uint8

const (
	// StateInProgress means keys are still accepted.
	StateInProgress State = iota
	// StateComplete means every word was committed; further keys are ignored.
	StateComplete
)

func (s State) String() string {
	if s == StateComplete {
		return "complete"
	}
	return "in-progress"
}

// Session is the typing test state machine. It is not safe for concurrent use.
type Session struct {
	words    []Word
	progress []rune
	current  int
	state    State
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to timestamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a session for the target words. It panics if targets is empty.
func New(targets []string, opts ...Option) *Session {
	if len(targets) == 0 {
		panic("typing: session needs at least one word")
	}
	s := &Session{
		words: make([]Word, len(targets)),
		now:   time.Now,
	}
	for i, t := range targets {
		s.words[i] = NewWord(t)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleKey applies one keystroke. Keys delivered after completion are ignored.
func (s *Session) HandleKey(k Key) {
	if s.state == StateComplete {
		return
	}
	switch k.Kind {
	case KeyCommit:
		if len(s.progress) > 0 {
			s.commit()
		}
	case KeyBackspace:
		if len(s.progress) == 0 {
			s.retreat()
			return
		}
		s.record(k)
		s.progress = s.progress[:len(s.progress)-1]
	case KeyChar:
		s.record(k)
		s.progress = append(s.progress, k.Rune)
	}
}

func (s *Session) record(k Key) {
	w := &s.words[s.current]
	w.events = append(w.events, Event{Time: s.now(), Key: k})
}

func (s *Session) commit() {
	w := &s.words[s.current]
	w.correct = string(s.progress) == w.text
	s.progress = s.progress[:0]

	if s.current == len(s.words)-1 {
		s.state = StateComplete
		s.current = 0
		return
	}
	s.current++
}

func (s *Session) retreat() {
	if s.current == 0 {
		return
	}
	s.current--
	s.progress = replay(s.words[s.current].events)
}

// Words returns a copy of all word records.
func (s *Session) Words() []Word {
	out := make([]Word, len(s.words))
	for i, w := range s.words {
		w.events = slices.Clone(w.events)
		out[i] = w
	}
	return out
}

// Word returns the record at index i.
func (s *Session) Word(i int) Word {
	w := s.words[i]
	w.events = slices.Clone(w.events)
	return w
}

// Len returns the number of words.
func (s *Session) Len() int {
	return len(s.words)
}

// Current returns the index of the active word. It is 0 once the session is complete.
func (s *Session) Current() int {
	return s.current
}

// Progress returns the uncommitted text of the active word.
func (s *Session) Progress() string {
	return string(s.progress)
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Complete reports whether the last word has been committed.
func (s *Session) Complete() bool {
	return s.state == StateComplete
}
