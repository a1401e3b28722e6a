package fetch

// Status is the lifecycle position of a controller.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is what presentation layers bind to.
type State[R any] struct {
	Status Status
	Data   R

	// Error is the user facing message of the last failure. Cleared when a
	// new call announces loading.
	Error string

	// Completed turns true after the first success and stays true.
	Completed bool

	// Attempts counts the attempts of the latest call: 1, or 2 after an auth refresh.
	Attempts int
}

func (s State[R]) IsLoading() bool {
	return s.Status == StatusLoading
}
