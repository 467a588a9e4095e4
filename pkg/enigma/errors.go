package enigma

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("enigma: invalid configuration")

	// ErrState matches every *StateError.
	ErrState = errors.New("enigma: component not configured")

	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("enigma: invalid input")
)

// ErrorKind identifies the exact condition behind an error.
type ErrorKind string

const (
	KindMissing            ErrorKind = "missing"
	KindNotAnArray         ErrorKind = "not-an-array"
	KindBadPairLength      ErrorKind = "bad-pair-length"
	KindDuplicateLetter    ErrorKind = "duplicate-letter"
	KindUnknownType        ErrorKind = "unknown-type"
	KindWrongArity         ErrorKind = "wrong-arity"
	KindUnknownRotorType   ErrorKind = "unknown-rotor-type"
	KindDuplicateRotorType ErrorKind = "duplicate-rotor-type"
	KindBadPosition        ErrorKind = "bad-position"
	KindBadOffset          ErrorKind = "bad-offset"
	KindNotConfigured      ErrorKind = "not-configured"
	KindInvalidCharacter   ErrorKind = "invalid-character"
)

// Component names used in errors and log lines.
const (
	ComponentPlugboard = "plugboard"
	ComponentReflector = "reflector"
	ComponentRotors    = "rotors"
	ComponentMachine   = "machine"
)

// ConfigError reports malformed or incomplete configuration.
type ConfigError struct {
	Component string
	Kind      ErrorKind
	Msg       string
}

func (e *ConfigError) Error() string { return e.Msg }

// Is implements errors.Is for sentinel matching.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// StateError reports an operation invoked before its component was configured.
type StateError struct {
	Component string
	Kind      ErrorKind
	Msg       string
}

func (e *StateError) Error() string { return e.Msg }

// Is implements errors.Is for sentinel matching.
func (e *StateError) Is(target error) bool { return target == ErrState }

// ValidationError reports a character outside the letters-and-space set.
// Index counts characters (not bytes) of the trimmed input.
type ValidationError struct {
	Kind  ErrorKind
	Char  rune
	Index int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid character %q found in position %d", string(e.Char), e.Index)
}

// Is implements errors.Is for sentinel matching.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// KindOf returns the ErrorKind carried by err, or "" if err is not an enigma error.
func KindOf(err error) ErrorKind {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	var se *StateError
	if errors.As(err, &se) {
		return se.Kind
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

func configError(log Logger, component string, kind ErrorKind, format string, args ...any) error {
	err := &ConfigError{Component: component, Kind: kind, Msg: fmt.Sprintf(format, args...)}
	log.Error(err.Msg)
	return err
}

func notConfigured(log Logger, component string) error {
	err := &StateError{Component: component, Kind: KindNotConfigured, Msg: component + " not configured"}
	log.Error(err.Msg)
	return err
}
