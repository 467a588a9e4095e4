package enigma

import (
	"fmt"
	"strings"
)

// rotorCount is fixed: the machine always carries three rotors.
const rotorCount = 3

// Rotors is the three-rotor assembly. Internally rotors are kept fastest
// first (index 0 is the rightmost rotor); callers address them left to right.
type Rotors struct {
	log    Logger
	rotors []*Rotor
}

// NewRotors returns an empty assembly.
func NewRotors(log Logger) *Rotors {
	return &Rotors{log: orDiscard(log)}
}

// Configure builds the assembly from three left-to-right rotor settings,
// resetting step counts. On failure the previous assembly is kept.
func (a *Rotors) Configure(settings []RotorSetting) error {
	if settings == nil {
		return configError(a.log, ComponentRotors, KindMissing, "rotors settings are missing")
	}
	if len(settings) != rotorCount {
		return configError(a.log, ComponentRotors, KindWrongArity,
			"invalid rotors settings: want %d rotors, got %d", rotorCount, len(settings))
	}
	for i, s := range settings {
		if s.Type == "" || s.Position == "" || s.Offset == "" {
			return configError(a.log, ComponentRotors, KindWrongArity,
				"invalid rotors settings: rotor %d needs type, position and offset", i+1)
		}
	}

	built := make([]*Rotor, 0, rotorCount)
	seen := make(map[string]bool, rotorCount)
	for _, s := range settings {
		spec, ok := LookupRotor(s.Type)
		if !ok {
			return configError(a.log, ComponentRotors, KindUnknownRotorType, "invalid rotor type: %s", s.Type)
		}
		if seen[s.Type] {
			return configError(a.log, ComponentRotors, KindDuplicateRotorType,
				"there can't be multiple rotors of the same type: %s", s.Type)
		}
		seen[s.Type] = true

		position, ok := ParseLetter(s.Position)
		if !ok {
			return configError(a.log, ComponentRotors, KindBadPosition, "invalid rotor position: %q", s.Position)
		}
		offset, ok := ParseLetter(s.Offset)
		if !ok {
			return configError(a.log, ComponentRotors, KindBadOffset, "invalid rotor offset: %q", s.Offset)
		}
		built = append(built, newRotorFromSpec(spec, offset, position, a.log))
	}

	// Store fastest first.
	for i, j := 0, len(built)-1; i < j; i, j = i+1, j-1 {
		built[i], built[j] = built[j], built[i]
	}
	a.rotors = built
	return nil
}

// Configured reports whether Configure has succeeded.
func (a *Rotors) Configured() bool {
	return len(a.rotors) == rotorCount
}

// Rotors returns the rotors left to right (slowest first).
func (a *Rotors) Rotors() []*Rotor {
	out := make([]*Rotor, len(a.rotors))
	for i, r := range a.rotors {
		out[len(a.rotors)-1-i] = r
	}
	return out
}

// Positions returns the window letters left to right, e.g. "ADU".
func (a *Rotors) Positions() string {
	var b strings.Builder
	for i := len(a.rotors) - 1; i >= 0; i-- {
		b.WriteRune(a.rotors[i].Position())
	}
	return b.String()
}

// Scramble passes letter through all three rotors. The inbound pass
// (rightToLeft) steps the rotors first; the return pass never steps.
func (a *Rotors) Scramble(letter rune, rightToLeft bool) (rune, error) {
	if !a.Configured() {
		return 0, notConfigured(a.log, ComponentRotors)
	}
	a.log.Info(fmt.Sprintf("[%c] [%c] [%c]",
		a.rotors[0].Position(), a.rotors[1].Position(), a.rotors[2].Position()))

	out := letter
	if rightToLeft {
		a.step()
		for i := 0; i < rotorCount; i++ {
			out = a.rotors[i].Scramble(out, true)
		}
		return out, nil
	}
	for i := rotorCount - 1; i >= 0; i-- {
		out = a.rotors[i].Scramble(out, false)
	}
	return out, nil
}

// step advances the assembly for one keypress, including the middle rotor's
// double step.
func (a *Rotors) step() {
	fast, middle, slow := a.rotors[0], a.rotors[1], a.rotors[2]

	fast.Step()

	midStepped := false
	if fast.atTurnover(fast.Position()) {
		a.log.Info(fmt.Sprintf("[Rotor %s] turnover position", fast.Type()))
		middle.Step()
		midStepped = true
	}

	if !middle.atTurnover(applyOffset(middle.Position(), 1)) {
		return
	}
	switch {
	case middle.StepCount()%alphabetSize == 0:
		a.log.Info(fmt.Sprintf("[Rotor %s] turnover position", middle.Type()))
		middle.Step()
		slow.Step()
	case !midStepped:
		slow.Step()
		if slow.atTurnover(slow.Position()) {
			middle.Step()
		}
	}
}
