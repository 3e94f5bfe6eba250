package engine

// System is one stage of the tick pipeline
type System interface {
	// Init resets session state for a new match, called by the constructor and World.Reset
	Init()

	// Name identifies the system for toggling and logs
	Name() string

	// Priority orders the pipeline, lower values run first
	Priority() int

	// Update runs the stage once per tick
	Update()
}

// Toggler is implemented by systems that can be switched off without removal
type Toggler interface {
	SetEnabled(enabled bool)
}
