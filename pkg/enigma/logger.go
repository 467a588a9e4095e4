package enigma

import "log/slog"

// Logger receives the machine's trace of substitutions, steps and failures.
// It is never consulted for control flow. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

func discardLogger() Logger {
	return slog.New(slog.DiscardHandler)
}

func orDiscard(log Logger) Logger {
	if log == nil {
		return discardLogger()
	}
	return log
}
