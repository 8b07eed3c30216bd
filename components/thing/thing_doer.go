package thing

// ThingDoer performs a single action.
type ThingDoer interface {
	// DoThing performs the action.
	DoThing()
}
