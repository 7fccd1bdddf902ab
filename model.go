package wavebuilder

// Geometry describes the output grid and which cells take part in observation.
type Geometry interface {
	// Size returns the output width and height in cells.
	Size() (w, h int)
	// Periodic reports whether neighbors wrap around the grid edges.
	Periodic() bool
	// OnBoundary reports whether (x,y) is excluded from observation and reconstruction.
	OnBoundary(x, y int) bool
}

// Patterns supplies pattern weights and the compatibility relation between them.
type Patterns interface {
	// Weights returns one positive weight per pattern.
	Weights() []float64
	// Reach is the largest |dx| or |dy| at which patterns constrain each other.
	Reach() int
	// Compatible returns the patterns allowed at offset (dx,dy) from t.
	Compatible(t, dx, dy int) []int
	// Ground returns the pattern forced along the bottom row, if any.
	Ground() (t int, ok bool)
}

// Model is everything the Solver needs to know about a concrete model.
type Model interface {
	Geometry
	Patterns
}

// Result is the state of a solve attempt.
type Result int

const (
	Running Result = iota
	Succeeded
	Contradiction
	Incomplete
)

func (r Result) String() string {
	switch r {
	case Succeeded:
		return "succeeded"
	case Contradiction:
		return "contradiction"
	case Incomplete:
		return "incomplete"
	default:
		return "running"
	}
}
