package thing

// Printer emits text lines.
type Printer interface {
	// PrintLine emits a single line, line shouldn't contain the line terminator.
	PrintLine(line string)
}
