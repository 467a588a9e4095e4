package enigma

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	infos  []string
	errors []string
}

func (r *recordingLogger) Info(msg string, _ ...any)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.errors = append(r.errors, msg) }
