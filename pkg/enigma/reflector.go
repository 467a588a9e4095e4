package enigma

import "fmt"

// Reflector turns the signal back through the rotors using a fixed pairing.
type Reflector struct {
	log  Logger
	spec *ReflectorSpec
}

// NewReflector returns an unconfigured reflector.
func NewReflector(log Logger) *Reflector {
	return &Reflector{log: orDiscard(log)}
}

// Configure selects a catalog reflector by type ("A", "B", "C", "B Thin", "C Thin").
func (r *Reflector) Configure(typ string) error {
	if typ == "" {
		return configError(r.log, ComponentReflector, KindMissing, "reflector settings are missing")
	}
	spec, ok := LookupReflector(typ)
	if !ok {
		return configError(r.log, ComponentReflector, KindUnknownType, "invalid reflector type: %s", typ)
	}
	r.spec = &spec
	return nil
}

// Type returns the selected reflector type, or "" before Configure succeeds.
func (r *Reflector) Type() string {
	if r.spec == nil {
		return ""
	}
	return r.spec.Type
}

// Scramble returns the partner of letter.
func (r *Reflector) Scramble(letter rune) (rune, error) {
	if r.spec == nil {
		return 0, notConfigured(r.log, ComponentReflector)
	}
	out := swap(r.spec.Pairs, letter)
	r.log.Info(fmt.Sprintf("[Reflector %s] %c => %c", r.spec.Type, letter, out))
	return out, nil
}
