package engine

// System is one step of a frame. Systems may declare Resource[T] fields;
// the Scheduler binds them when the system is registered.
type System interface {
	Execute(frame *UpdateFrame)
}
