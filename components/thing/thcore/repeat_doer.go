package thcore

import (
	"os"

	"github.com/open-control-systems/thing-doer/components/thing"
)

// Message is the line emitted on each repetition.
const Message = "Doing a thing!"

// RepeatDoer prints Message a fixed number of times.
type RepeatDoer struct {
	printer thing.Printer
	times   int
}

// NewRepeatDoer is an initialization of RepeatDoer.
//
// Parameters:
//   - times - number of repetitions, non-positive value produces no output.
//   - printer to emit the lines.
func NewRepeatDoer(times int, printer thing.Printer) *RepeatDoer {
	return &RepeatDoer{
		printer: printer,
		times:   times,
	}
}

// NewStdoutRepeatDoer creates RepeatDoer writing to the standard output.
func NewStdoutRepeatDoer(times int) *RepeatDoer {
	return NewRepeatDoer(times, NewWriterPrinter(os.Stdout))
}

// Times returns the number of repetitions.
func (d *RepeatDoer) Times() int {
	return d.times
}

// DoThing prints Message times times on the calling goroutine.
func (d *RepeatDoer) DoThing() {
	for i := 0; i < d.times; i++ {
		d.printer.PrintLine(Message)
	}
}
