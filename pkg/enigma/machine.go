package enigma

import (
	"fmt"
	"strings"
)

// Machine wires a plugboard, a rotor assembly and a reflector into the full
// signal path. Rotor positions persist across Cypher calls until the next
// Configure.
type Machine struct {
	log       Logger
	plugboard *Plugboard
	rotors    *Rotors
	reflector *Reflector
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger routes the machine trace to log. The default discards it.
func WithLogger(log Logger) Option {
	return func(m *Machine) {
		m.log = log
	}
}

// New returns an unconfigured machine.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	m.log = orDiscard(m.log)
	m.plugboard = NewPlugboard(m.log)
	m.rotors = NewRotors(m.log)
	m.reflector = NewReflector(m.log)
	return m
}

// Configure applies settings to the plugboard, rotors and reflector in that
// order and stops at the first failure. Components configured before the
// failure keep their new settings.
func (m *Machine) Configure(s Settings) error {
	if err := m.plugboard.Configure(s.Plugboard); err != nil {
		return err
	}
	if err := m.rotors.Configure(s.Rotors); err != nil {
		return err
	}
	return m.reflector.Configure(s.Reflector)
}

// Cypher encrypts or decrypts text. Surrounding whitespace is trimmed,
// inner spaces are kept in place and letters are uppercased. The whole
// input is validated before any rotor moves.
func (m *Machine) Cypher(text string) (string, error) {
	input := []rune(strings.TrimSpace(text))
	for i, r := range input {
		if r != ' ' && !isLetter(upper(r)) {
			err := &ValidationError{Kind: KindInvalidCharacter, Char: r, Index: i}
			m.log.Error(err.Error())
			return "", err
		}
	}

	out := make([]rune, len(input))
	for i, r := range input {
		if r == ' ' {
			out[i] = r
			continue
		}
		c, err := m.Press(upper(r))
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	result := string(out)
	m.log.Info(fmt.Sprintf("Word %q cyphered into %q", text, result))
	return result, nil
}

// Press sends one uppercase letter through the machine, stepping the rotors.
// Anything other than A..Z is rejected before the rotors move.
func (m *Machine) Press(letter rune) (rune, error) {
	if !isLetter(letter) {
		err := &ValidationError{Kind: KindInvalidCharacter, Char: letter}
		m.log.Error(err.Error())
		return 0, err
	}
	c := m.plugboard.Scramble(letter)
	c, err := m.rotors.Scramble(c, true)
	if err != nil {
		return 0, err
	}
	c, err = m.reflector.Scramble(c)
	if err != nil {
		return 0, err
	}
	c, err = m.rotors.Scramble(c, false)
	if err != nil {
		return 0, err
	}
	return m.plugboard.Scramble(c), nil
}

// Positions returns the rotor window letters left to right.
func (m *Machine) Positions() string {
	return m.rotors.Positions()
}

// RotorState is a snapshot of one rotor.
type RotorState struct {
	Type      string `json:"type"`
	Position  string `json:"position"`
	Offset    string `json:"offset"`
	StepCount int    `json:"step_count"`
}

// State is a snapshot of the machine.
type State struct {
	Plugboard []string     `json:"plugboard"`
	Reflector string       `json:"reflector"`
	Rotors    []RotorState `json:"rotors"`
}

// State returns a snapshot of the current configuration, rotors left to right.
func (m *Machine) State() State {
	st := State{
		Plugboard: m.plugboard.Pairs(),
		Reflector: m.reflector.Type(),
	}
	for _, r := range m.rotors.Rotors() {
		st.Rotors = append(st.Rotors, RotorState{
			Type:      r.Type(),
			Position:  string(r.Position()),
			Offset:    string(r.Offset()),
			StepCount: r.StepCount(),
		})
	}
	return st
}
