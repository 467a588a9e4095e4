package settings

import (
	"fmt"
	"strings"

	"enigma/pkg/enigma"
)

// Overrides carries CLI flag values. A nil field means the flag was not set.
type Overrides struct {
	Plugboard *string
	Reflector *string
	Rotors    *string
}

// Apply returns s with every set override replacing the matching field.
func (o Overrides) Apply(s enigma.Settings) (enigma.Settings, error) {
	if o.Plugboard != nil {
		s.Plugboard = ParsePlugboard(*o.Plugboard)
	}
	if o.Reflector != nil {
		s.Reflector = strings.TrimSpace(*o.Reflector)
	}
	if o.Rotors != nil {
		rotors, err := ParseRotors(*o.Rotors)
		if err != nil {
			return s, err
		}
		s.Rotors = rotors
	}
	return s, nil
}

// ParsePlugboard splits "AM FI NV" (spaces or commas) into pairs.
// An empty string means an empty plugboard.
func ParsePlugboard(v string) []string {
	pairs := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' })
	if pairs == nil {
		return []string{}
	}
	return pairs
}

// ParseRotors reads "II:A:X,I:B:M,III:L:V" (type:position:offset, left to right).
func ParseRotors(v string) ([]enigma.RotorSetting, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	var rotors []enigma.RotorSetting
	for i, field := range strings.Split(v, ",") {
		parts := strings.Split(strings.TrimSpace(field), ":")
		if len(parts) != 3 {
			return nil, shapeError(enigma.ComponentRotors, enigma.KindWrongArity,
				fmt.Sprintf("invalid rotors settings: rotor %d must be type:position:offset, got %q", i+1, field))
		}
		rotors = append(rotors, enigma.RotorSetting{Type: parts[0], Position: parts[1], Offset: parts[2]})
	}
	return rotors, nil
}

// FormatRotors is the inverse of ParseRotors.
func FormatRotors(rotors []enigma.RotorSetting) string {
	fields := make([]string, len(rotors))
	for i, r := range rotors {
		fields[i] = r.Type + ":" + r.Position + ":" + r.Offset
	}
	return strings.Join(fields, ",")
}
