package mcp

import (
	"sync"
	"time"

	"enigma/pkg/enigma"
)

// Session owns one machine. Calls on a session are serialized so concurrent
// tool requests never interleave key presses.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	machine  *enigma.Machine
	messages int
	letters  int
}

func newSession(id string, log enigma.Logger) *Session {
	return &Session{
		ID:      id,
		Created: time.Now(),
		machine: enigma.New(enigma.WithLogger(log)),
	}
}

// Configure applies settings to the session's machine. On failure the
// previously configured components are kept.
func (s *Session) Configure(settings enigma.Settings) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.Configure(settings); err != nil {
		return "", err
	}
	return s.machine.Positions(), nil
}

// Cypher runs text through the machine and returns the output with the
// rotor windows after the last letter.
func (s *Session) Cypher(text string) (output, positions string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	output, err = s.machine.Cypher(text)
	if err != nil {
		return "", "", err
	}
	s.messages++
	for _, r := range output {
		if r != ' ' {
			s.letters++
		}
	}
	return output, s.machine.Positions(), nil
}

// Stats reports how many messages and letters went through the session.
func (s *Session) Stats() (messages, letters int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages, s.letters
}

// State returns a snapshot of the machine.
func (s *Session) State() (enigma.State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State(), s.machine.Positions()
}
