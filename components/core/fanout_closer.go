package core

// Propagate close call to the underlying closers.
type FanoutCloser struct {
	closers []node
}

// Add closer with id to be notified when the close event is happened.
func (c *FanoutCloser) Add(id string, closer Closer) {
	c.closers = append(c.closers, node{id: id, c: closer})
}

// Close all, the most recently added closer is closed first.
func (c *FanoutCloser) Close() error {
	for i := len(c.closers) - 1; i >= 0; i-- {
		node := c.closers[i]

		if err := node.c.Close(); err != nil {
			Log.Errorw("fanout-closer: failed to close", "id", node.id, "err", err)
		}
	}

	return nil
}

type node struct {
	id string
	c  Closer
}
