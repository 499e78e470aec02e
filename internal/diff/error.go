package diff

import "fmt"

// FormatError wraps a failure of the string writer used during emission.
// In practice this only surfaces if the output sink refuses bytes; a
// strings.Builder never errors, but the emitter writes against io.StringWriter
// so a future sink that can fail is handled uniformly.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("diff: format: %s: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
