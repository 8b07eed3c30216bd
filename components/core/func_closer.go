package core

// FuncCloser adapts a plain function to Closer.
type FuncCloser func() error

// Close invokes f.
func (f FuncCloser) Close() error {
	return f()
}
