package core

// Closer releases a resource acquired during the process lifetime.
type Closer interface {
	// Close releases the resource.
	Close() error
}
