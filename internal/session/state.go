package session

import "github.com/ipwhere/ipwhere/internal/models"

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. Error is only set in the
// Error phase and Result is only set in the Success phase; both
// are empty in the Idle and Loading phases.
type State struct {
	Address string
	Phase   Phase
	Error   string
	Result  *models.LookupResult
}
