package physics

// Integration and constraint parameters. The simulation is not wall-clock
// adaptive: TimeStep and Substeps are fixed and assume the frame source runs
// at a compatible rate.
const (
	NumParticles         = 10    // rope chain length
	SegmentLength        = 10.0  // rest length between adjacent rope particles
	TimeStep             = 0.016 // fixed physics tick, in seconds
	Substeps             = 5     // physics iterations per rendered frame
	ConstraintIterations = 8     // relaxation passes per rope update
	Friction             = 0.98  // velocity retained per integration step
)
