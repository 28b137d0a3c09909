// Package session owns the lookup request lifecycle: it
// sequences the manual lookup and the detect-then-lookup flows,
// transitions the phase state machine and normalizes every
// failure mode into a single user facing message.
package session

import (
	"sync"
)

type Session struct {
	mutex    sync.Mutex
	state    State
	latest   uint64 // token of the most recently issued request
	geo      GeoLookuper
	detector IPDetector
	logger   Logger
}

func New(geo GeoLookuper, detector IPDetector, logger Logger) *Session {
	return &Session{
		state:    State{Phase: PhaseIdle},
		geo:      geo,
		detector: detector,
		logger:   logger,
	}
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

// SetAddress stores the address typed or quick-filled by the
// user. It never triggers a lookup.
func (s *Session) SetAddress(address string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.state.Address = address
}

// beginLoading transitions to the Loading phase, clearing any
// previous error or result before any request is issued so stale
// data from an earlier lookup is never shown, and returns the
// token identifying the new request.
func (s *Session) beginLoading() (token uint64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.latest++
	s.state.Phase = PhaseLoading
	s.state.Error = ""
	s.state.Result = nil
	return s.latest
}

// settle applies a state mutation for the request identified by
// token, unless a more recent request was issued since, in which
// case the settlement is discarded silently so the state only
// ever reflects the most recent user intended lookup.
func (s *Session) settle(token uint64, apply func(state *State)) State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if token == s.latest {
		apply(&s.state)
	} else {
		s.logger.Debug("discarding stale request settlement")
	}
	return s.state
}

func (s *Session) settleError(token uint64, message string) State {
	s.logger.Warn("lookup failed: " + message)
	return s.settle(token, func(state *State) {
		state.Phase = PhaseError
		state.Error = message
		state.Result = nil
	})
}
