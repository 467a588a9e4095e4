package enigma

import (
	"fmt"
	"strings"
)

// Rotor is a single wired disk turned to a window position and offset by a
// ring setting.
type Rotor struct {
	log       Logger
	typ       string
	offset    rune
	position  rune
	forward   [alphabetSize]rune
	inverse   [alphabetSize]rune
	turnover  string
	stepCount int
}

// NewRotor builds a rotor. wiring must be a permutation of A..Z; offset and
// position must be uppercase letters.
func NewRotor(offset, position rune, wiring, turnover, typ string, log Logger) *Rotor {
	r := &Rotor{
		log:      orDiscard(log),
		typ:      typ,
		offset:   offset,
		position: position,
		turnover: turnover,
	}
	for i, contact := range wiring {
		r.forward[i] = contact
		r.inverse[letterIndex(contact)] = letterFromIndex(i)
	}
	return r
}

func newRotorFromSpec(spec RotorSpec, offset, position rune, log Logger) *Rotor {
	return NewRotor(offset, position, spec.Wiring, spec.Turnover, spec.Type, log)
}

// Type returns the catalog name of the rotor, e.g. "III".
func (r *Rotor) Type() string { return r.typ }

// Position returns the letter currently showing in the window.
func (r *Rotor) Position() rune { return r.position }

// Offset returns the ring setting.
func (r *Rotor) Offset() rune { return r.offset }

// StepCount returns how many times the rotor has stepped since it was built.
func (r *Rotor) StepCount() int { return r.stepCount }

// Turnover returns the window letters at which stepping this rotor carries
// its left neighbour.
func (r *Rotor) Turnover() string { return r.turnover }

// atTurnover reports whether letter is one of the rotor's turnover letters.
func (r *Rotor) atTurnover(letter rune) bool {
	return strings.ContainsRune(r.turnover, letter)
}

// Step advances the rotor one position.
func (r *Rotor) Step() {
	r.position = applyOffset(r.position, 1)
	r.stepCount++
	r.log.Info(fmt.Sprintf("[Rotor %s] position is now %c", r.typ, r.position))
}

// Scramble passes letter through the wiring. rightToLeft is the inbound
// direction (keyboard towards reflector) and uses the wiring as written;
// the return pass uses its inverse.
func (r *Rotor) Scramble(letter rune, rightToLeft bool) rune {
	shift := letterIndex(r.position)
	ring := letterIndex(r.offset)

	entry := applyOffset(applyOffset(letter, shift), -ring)

	var wired rune
	if rightToLeft {
		wired = r.forward[letterIndex(entry)]
	} else {
		wired = r.inverse[letterIndex(entry)]
	}

	exit := applyOffset(wired, ring)
	out := applyOffset(exit, -shift)

	r.log.Info(fmt.Sprintf("[Rotor %s] %c => [ %c => %c ] => %c", r.typ, letter, entry, exit, out))
	return out
}
