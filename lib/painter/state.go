package painter

type State int

const (
	Uninitialized State = iota
	// Initialized means the programs are built and the geometry uploaded.
	Initialized
	Running
	ClosingRequested
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case ClosingRequested:
		return "closing requested"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
