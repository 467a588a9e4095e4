package enigma

import (
	"errors"
	"testing"
)

func TestReflector_Configure(t *testing.T) {
	r := NewReflector(nil)
	if err := r.Configure(""); KindOf(err) != KindMissing {
		t.Errorf("empty type: got %v", err)
	}
	err := r.Configure("invalidType")
	if KindOf(err) != KindUnknownType {
		t.Errorf("unknown type: got %v", err)
	}
	if err.Error() != "invalid reflector type: invalidType" {
		t.Errorf("message: %q", err.Error())
	}
	if err := r.Configure("B Thin"); err != nil {
		t.Fatalf("Configure(B Thin): %v", err)
	}
	if r.Type() != "B Thin" {
		t.Errorf("Type() = %q", r.Type())
	}
}

func TestReflector_ScrambleBeforeConfigure(t *testing.T) {
	rec := &recordingLogger{}
	r := NewReflector(rec)
	_, err := r.Scramble('A')
	if !errors.Is(err, ErrState) || KindOf(err) != KindNotConfigured {
		t.Fatalf("want not-configured StateError, got %v", err)
	}
	if len(rec.errors) != 1 {
		t.Errorf("error not mirrored to logger: %v", rec.errors)
	}
}

func TestReflector_Scramble(t *testing.T) {
	r := NewReflector(nil)
	if err := r.Configure("B"); err != nil {
		t.Fatal(err)
	}
	for in, want := range map[rune]rune{'A': 'Y', 'Y': 'A', 'Q': 'E'} {
		got, err := r.Scramble(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%c => %c, want %c", in, got, want)
		}
	}
}

func TestReflector_NoLetterMapsToItself(t *testing.T) {
	for _, spec := range ReflectorTypes() {
		r := NewReflector(nil)
		if err := r.Configure(spec.Type); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < alphabetSize; i++ {
			in := letterFromIndex(i)
			out, _ := r.Scramble(in)
			if out == in {
				t.Errorf("reflector %s: %c maps to itself", spec.Type, in)
			}
			back, _ := r.Scramble(out)
			if back != in {
				t.Errorf("reflector %s: %c => %c => %c", spec.Type, in, out, back)
			}
		}
	}
}
