package thing

// FuncPrinter is a function type that implements the Printer interface.
type FuncPrinter func(line string)

// PrintLine calls the function itself to fulfill the Printer interface.
func (f FuncPrinter) PrintLine(line string) {
	f(line)
}
