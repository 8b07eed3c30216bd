package thcore

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/thing-doer/components/thing"
)

var _ thing.ThingDoer = (*RepeatDoer)(nil)

func TestRepeatDoerDoThing(t *testing.T) {
	for _, times := range []int{1, 2, 5, 100} {
		printer := &LinePrinter{}

		doer := NewRepeatDoer(times, printer)
		require.Equal(t, times, doer.Times())

		doer.DoThing()

		lines := printer.Lines()
		require.Len(t, lines, times)

		for _, line := range lines {
			require.Equal(t, Message, line)
		}
	}
}

func TestRepeatDoerZeroTimes(t *testing.T) {
	printer := &LinePrinter{}

	NewRepeatDoer(0, printer).DoThing()
	require.Empty(t, printer.Lines())
}

func TestRepeatDoerNegativeTimes(t *testing.T) {
	printer := &LinePrinter{}

	doer := NewRepeatDoer(-3, printer)
	require.Equal(t, -3, doer.Times())

	doer.DoThing()
	require.Empty(t, printer.Lines())
}

func TestRepeatDoerDoThingTwice(t *testing.T) {
	printer := &LinePrinter{}

	doer := NewRepeatDoer(2, printer)

	doer.DoThing()
	require.Len(t, printer.Lines(), 2)

	doer.DoThing()
	require.Len(t, printer.Lines(), 4)
	require.Equal(t, 2, doer.Times())
}

func TestRepeatDoerWriterOutput(t *testing.T) {
	var buf bytes.Buffer

	NewRepeatDoer(3, NewWriterPrinter(&buf)).DoThing()

	require.Equal(t, "Doing a thing!\nDoing a thing!\nDoing a thing!\n", buf.String())
}

func TestRepeatDoerWriterOutputNegativeTimes(t *testing.T) {
	var buf bytes.Buffer

	NewRepeatDoer(-1, NewWriterPrinter(&buf)).DoThing()

	require.Zero(t, buf.Len())
}

func TestRepeatDoerAsFanoutMember(t *testing.T) {
	printer := &LinePrinter{}

	fanout := &thing.FanoutThingDoer{}
	fanout.Add("two", NewRepeatDoer(2, printer))
	fanout.Add("none", NewRepeatDoer(-1, printer))
	fanout.Add("one", NewRepeatDoer(1, printer))

	fanout.DoThing()
	require.Equal(t, []string{Message, Message, Message}, printer.Lines())
}

func captureTestStdout(t *testing.T, fn func()) string {
	r, w, err := os.Pipe()
	require.Nil(t, err)
	defer r.Close()

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	fn()

	require.Nil(t, w.Close())

	buf, err := io.ReadAll(r)
	require.Nil(t, err)

	return string(buf)
}

func TestNewStdoutRepeatDoer(t *testing.T) {
	out := captureTestStdout(t, func() {
		doer := NewStdoutRepeatDoer(3)
		require.Equal(t, 3, doer.Times())

		doer.DoThing()
	})
	require.Equal(t, "Doing a thing!\nDoing a thing!\nDoing a thing!\n", out)
}

func TestNewStdoutRepeatDoerNegativeTimes(t *testing.T) {
	out := captureTestStdout(t, func() {
		NewStdoutRepeatDoer(-3).DoThing()
	})
	require.Empty(t, out)
}
