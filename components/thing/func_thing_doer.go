package thing

// FuncThingDoer is a function type that implements the ThingDoer interface.
type FuncThingDoer func()

// DoThing calls the function itself to fulfill the ThingDoer interface.
func (f FuncThingDoer) DoThing() {
	f()
}
