package thing

import "github.com/open-control-systems/thing-doer/components/core"

// FanoutThingDoer propagates DoThing call to the underlying doers.
//
// Remarks:
//   - Not thread-safe.
type FanoutThingDoer struct {
	doers []node
}

// Add registers doer with id, doers are called in the registration order.
func (d *FanoutThingDoer) Add(id string, doer ThingDoer) {
	d.doers = append(d.doers, node{id: id, d: doer})
}

// DoThing calls all registered doers.
func (d *FanoutThingDoer) DoThing() {
	for _, node := range d.doers {
		core.Log.Debugw("fanout-thing-doer: doing", "id", node.id)

		node.d.DoThing()
	}
}

type node struct {
	id string
	d  ThingDoer
}
