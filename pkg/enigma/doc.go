// Package enigma simulates a three-rotor Enigma cipher machine.
//
// A keypress travels plugboard -> rotors (right to left, stepping first) ->
// reflector -> rotors (left to right) -> plugboard. Because the reflector
// pairs every letter with a different one, encrypting the ciphertext on an
// identically configured machine restores the plaintext.
//
// A Machine is not safe for concurrent use. Callers that share one across
// goroutines must serialize access; independent messages should use
// independent machines.
package enigma
