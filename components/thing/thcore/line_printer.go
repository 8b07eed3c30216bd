package thcore

import (
	"slices"
	"sync"
)

// LinePrinter keeps printed lines in memory.
//
// Remarks:
//   - Can be used by multiple goroutines.
type LinePrinter struct {
	mu    sync.Mutex
	lines []string
}

// PrintLine appends line.
func (p *LinePrinter) PrintLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lines = append(p.lines, line)
}

// Lines returns a copy of all printed lines.
func (p *LinePrinter) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.lines)
}
