// Package testutil provides helpers shared by package tests.
package testutil

// ErrorWriter is an io.Writer that fails on demand, either immediately
// or after a number of successful writes.
type ErrorWriter struct {
	err       error
	failAfter int // number of writes before failing (0 = always fail)
	writes    int
}

// NewErrorWriter creates an ErrorWriter that always fails with the
// given error.
func NewErrorWriter(err error) *ErrorWriter {
	return &ErrorWriter{err: err}
}

// NewErrorWriterAfter creates an ErrorWriter that fails after n
// successful writes.
func NewErrorWriterAfter(n int, err error) *ErrorWriter {
	return &ErrorWriter{failAfter: n, err: err}
}

// Write implements io.Writer.
func (e *ErrorWriter) Write(p []byte) (n int, err error) {
	if e.failAfter == 0 || e.writes >= e.failAfter {
		return 0, e.err
	}

	e.writes++

	return len(p), nil
}
