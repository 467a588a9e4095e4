package enigma

// RotorSpec is one historical rotor type: its wiring permutation and the
// window letters at which stepping it carries the next rotor.
type RotorSpec struct {
	Type     string `json:"type"`
	Wiring   string `json:"wiring"`
	Turnover string `json:"turnover"`
}

// ReflectorSpec is one historical reflector: 13 disjoint pairs covering A..Z.
type ReflectorSpec struct {
	Type  string   `json:"type"`
	Pairs []string `json:"pairs"`
}

var rotorCatalog = []RotorSpec{
	{Type: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Turnover: "R"},
	{Type: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Turnover: "F"},
	{Type: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Turnover: "W"},
	{Type: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Turnover: "K"},
	{Type: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Turnover: "A"},
	{Type: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Turnover: "AN"},
	{Type: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Turnover: "AN"},
	{Type: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Turnover: "AN"},
}

var reflectorCatalog = []ReflectorSpec{
	{Type: "A", Pairs: []string{"AE", "BJ", "CM", "DZ", "FL", "GY", "HX", "IV", "KW", "NR", "OQ", "PU", "ST"}},
	{Type: "B", Pairs: []string{"AY", "BR", "CU", "DH", "EQ", "FS", "GL", "IP", "JX", "KN", "MO", "TZ", "VW"}},
	{Type: "C", Pairs: []string{"AF", "BV", "CP", "DJ", "EI", "GO", "HY", "KR", "LZ", "MX", "NW", "TQ", "SU"}},
	{Type: "B Thin", Pairs: []string{"AE", "BN", "CK", "DQ", "FU", "GY", "HW", "IJ", "LO", "MP", "RX", "SZ", "TV"}},
	{Type: "C Thin", Pairs: []string{"AR", "BD", "CO", "EJ", "FN", "GT", "HK", "IV", "LM", "PW", "QZ", "SX", "UY"}},
}

// LookupRotor returns the catalog entry for a rotor type.
func LookupRotor(typ string) (RotorSpec, bool) {
	for _, r := range rotorCatalog {
		if r.Type == typ {
			return r, true
		}
	}
	return RotorSpec{}, false
}

// LookupReflector returns the catalog entry for a reflector type.
func LookupReflector(typ string) (ReflectorSpec, bool) {
	for _, r := range reflectorCatalog {
		if r.Type == typ {
			return ReflectorSpec{Type: r.Type, Pairs: append([]string(nil), r.Pairs...)}, true
		}
	}
	return ReflectorSpec{}, false
}

// RotorTypes returns a copy of the rotor catalog in historical order.
func RotorTypes() []RotorSpec {
	return append([]RotorSpec(nil), rotorCatalog...)
}

// ReflectorTypes returns a copy of the reflector catalog in historical order.
func ReflectorTypes() []ReflectorSpec {
	out := make([]ReflectorSpec, len(reflectorCatalog))
	for i, r := range reflectorCatalog {
		out[i] = ReflectorSpec{Type: r.Type, Pairs: append([]string(nil), r.Pairs...)}
	}
	return out
}
