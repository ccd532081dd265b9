package engine

// UpdateFrame is handed to every system during one pass of the scheduler.
type UpdateFrame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}
