package enigma

import "testing"

const wiringI = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"

func TestRotor_Accessors(t *testing.T) {
	r := NewRotor('A', 'A', wiringI, "R", "I", nil)
	if r.Position() != 'A' || r.StepCount() != 0 || r.Turnover() != "R" || r.Type() != "I" || r.Offset() != 'A' {
		t.Errorf("unexpected initial state: %c %d %s %s %c", r.Position(), r.StepCount(), r.Turnover(), r.Type(), r.Offset())
	}
}

func TestRotor_Scramble(t *testing.T) {
	r := NewRotor('A', 'A', wiringI, "R", "I", nil)
	if got := r.Scramble('A', true); got != 'E' {
		t.Errorf("right to left: A => %c, want E", got)
	}
	if got := r.Scramble('A', false); got != 'U' {
		t.Errorf("left to right: A => %c, want U", got)
	}
}

func TestRotor_ScrambleWithPositionAndRing(t *testing.T) {
	// Position B shifts the entry contact to B, which rotor I wires to K;
	// shifting back gives J.
	r := NewRotor('A', 'B', wiringI, "R", "I", nil)
	if got := r.Scramble('A', true); got != 'J' {
		t.Errorf("position B: A => %c, want J", got)
	}
	// Ring setting B with position B cancels out to the A/A wiring.
	r = NewRotor('B', 'B', wiringI, "R", "I", nil)
	if got := r.Scramble('A', true); got != 'E' {
		t.Errorf("ring B position B: A => %c, want E", got)
	}
}

func TestRotor_DirectionsAreInverse(t *testing.T) {
	for _, spec := range RotorTypes() {
		r := newRotorFromSpec(spec, 'F', 'Q', nil)
		for i := 0; i < alphabetSize; i++ {
			in := letterFromIndex(i)
			if back := r.Scramble(r.Scramble(in, true), false); back != in {
				t.Errorf("rotor %s: %c round-trips to %c", spec.Type, in, back)
			}
		}
	}
}

func TestRotor_Step(t *testing.T) {
	rec := &recordingLogger{}
	r := NewRotor('A', 'Z', wiringI, "R", "I", rec)
	r.Step()
	if r.Position() != 'A' || r.StepCount() != 1 {
		t.Errorf("after step: position %c count %d", r.Position(), r.StepCount())
	}
	if len(rec.infos) != 1 || rec.infos[0] != "[Rotor I] position is now A" {
		t.Errorf("log: %v", rec.infos)
	}
}
