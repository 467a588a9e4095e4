package enigma

import "strconv"

// Settings is a complete machine configuration.
type Settings struct {
	Plugboard []string       `json:"plugboard" yaml:"plugboard"`
	Reflector string         `json:"reflector" yaml:"reflector"`
	Rotors    []RotorSetting `json:"rotors" yaml:"rotors"`
}

// RotorSetting describes one rotor slot. Rotors are listed left to right,
// slowest first, as they sit in the machine.
//
// Offset (ring setting) and Position (window letter) accept either a letter
// A..Z in any case or a 1-based decimal index "1".."26".
type RotorSetting struct {
	Type     string `json:"type" yaml:"type"`
	Position string `json:"position" yaml:"position"`
	Offset   string `json:"offset" yaml:"offset"`
}

// ParseLetter converts a letter or 1-based index into an uppercase letter.
// Indexes are plain decimal digits: no sign, no leading zero, no spaces.
func ParseLetter(s string) (rune, bool) {
	if r := []rune(s); len(r) == 1 && isLetter(upper(r[0])) {
		return upper(r[0]), true
	}
	if s == "" || s[0] == '0' {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > alphabetSize {
		return 0, false
	}
	return letterFromIndex(n - 1), true
}
