package thcore

import (
	"io"

	"github.com/open-control-systems/thing-doer/components/core"
)

// WriterPrinter writes newline terminated lines to io.Writer.
type WriterPrinter struct {
	writer io.Writer
}

// NewWriterPrinter is an initialization of WriterPrinter.
func NewWriterPrinter(writer io.Writer) *WriterPrinter {
	return &WriterPrinter{
		writer: writer,
	}
}

// PrintLine writes line followed by '\n'.
//
// Remarks:
//   - Write failure is logged and otherwise ignored.
func (p *WriterPrinter) PrintLine(line string) {
	if _, err := io.WriteString(p.writer, line+"\n"); err != nil {
		core.Log.Errorw("writer-printer: failed to write line", "err", err)
	}
}
