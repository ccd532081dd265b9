package engine

// Commands buffers work that must run after every system in the frame has
// executed, so later systems never observe it half way through a frame.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed. Functions run in the
// order they were queued.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and resets the buffer. Functions queued
// while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
