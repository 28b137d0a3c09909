package session

import (
	"context"
	"strings"

	"github.com/ipwhere/ipwhere/internal/models"
)

// Lookup resolves the target address to geolocation data and
// settles the session in the Error or Success phase. An empty
// target falls back to the stored address; if that is empty too,
// it fails locally without issuing any network request.
// It returns the state after settlement.
func (s *Session) Lookup(ctx context.Context, target string) State {
	s.mutex.Lock()
	target = strings.TrimSpace(target)
	if target == "" {
		target = strings.TrimSpace(s.state.Address)
	} else {
		s.state.Address = target
	}

	if target == "" {
		// This settles immediately, so any lookup still in flight
		// must be invalidated or it would overwrite this error.
		s.latest++
		s.state.Phase = PhaseError
		s.state.Error = MessageEmptyAddress
		s.state.Result = nil
		state := s.state
		s.mutex.Unlock()
		return state
	}
	s.mutex.Unlock()

	token := s.beginLoading()
	s.logger.Debug("looking up " + target)

	result, err := s.geo.Lookup(ctx, target)
	if err != nil {
		return s.settleError(token, errorMessage(err, MessageLookupFailed))
	}

	return s.settleSuccess(token, result)
}

func (s *Session) settleSuccess(token uint64, result models.LookupResult) State {
	return s.settle(token, func(state *State) {
		state.Phase = PhaseSuccess
		state.Error = ""
		state.Result = &result
	})
}
