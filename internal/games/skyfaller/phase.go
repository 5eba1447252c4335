package skyfaller

// Phase is the session state machine: Running until lives run out,
// then GameOver for good.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}
