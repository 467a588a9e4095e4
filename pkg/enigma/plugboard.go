package enigma

import (
	"fmt"
	"slices"
)

// Plugboard swaps letters connected by patch cables, before and after the
// rotor path. An unconfigured plugboard passes every letter through.
type Plugboard struct {
	log   Logger
	pairs []string
}

// NewPlugboard returns a plugboard with no cables.
func NewPlugboard(log Logger) *Plugboard {
	return &Plugboard{log: orDiscard(log)}
}

// Configure replaces the cable set. A nil slice is an error; an empty one
// removes every cable. Pairs are case-insensitive and stored uppercase.
func (p *Plugboard) Configure(pairs []string) error {
	if pairs == nil {
		return configError(p.log, ComponentPlugboard, KindMissing, "plugboard settings are missing")
	}

	normalized := make([]string, len(pairs))
	seen := make(map[rune]bool, 2*len(pairs))
	for i, pair := range pairs {
		letters := []rune(pair)
		if len(letters) != 2 || !isLetter(upper(letters[0])) || !isLetter(upper(letters[1])) {
			return configError(p.log, ComponentPlugboard, KindBadPairLength,
				"each plugboard pair must consist of exactly two letters: %q", pair)
		}
		for _, r := range letters {
			r = upper(r)
			if seen[r] {
				return configError(p.log, ComponentPlugboard, KindDuplicateLetter,
					"plugboard pairs must not contain duplicate letters: %c", r)
			}
			seen[r] = true
		}
		normalized[i] = string([]rune{upper(letters[0]), upper(letters[1])})
	}

	p.pairs = normalized
	return nil
}

// Pairs returns the configured cables.
func (p *Plugboard) Pairs() []string {
	return slices.Clone(p.pairs)
}

// Scramble returns the letter cabled to letter, or letter itself.
func (p *Plugboard) Scramble(letter rune) rune {
	out := swap(p.pairs, letter)
	p.log.Info(fmt.Sprintf("[Plugboard] %c => %c", letter, out))
	return out
}

// swap returns the partner of letter in the first pair containing it.
func swap(pairs []string, letter rune) rune {
	for _, pair := range pairs {
		switch letter {
		case rune(pair[0]):
			return rune(pair[1])
		case rune(pair[1]):
			return rune(pair[0])
		}
	}
	return letter
}
