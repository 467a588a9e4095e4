package enigma

// alphabetSize is the number of contacts on every rotor, reflector and plugboard.
const alphabetSize = 26

// letterIndex returns the 0..25 index of an uppercase letter.
func letterIndex(letter rune) int {
	return int(letter - 'A')
}

// letterFromIndex returns the uppercase letter at index 0..25.
func letterFromIndex(index int) rune {
	return rune('A' + index)
}

// applyOffset rotates letter by delta positions around the alphabet.
// delta may be negative.
func applyOffset(letter rune, delta int) rune {
	index := (letterIndex(letter) + delta%alphabetSize + alphabetSize) % alphabetSize
	return letterFromIndex(index)
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// upper folds an ASCII lowercase letter to uppercase and leaves anything else alone.
func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
