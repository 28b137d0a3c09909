package session

import (
	"context"
	"errors"

	"github.com/ipwhere/ipwhere/pkg/publicip"
)

// UseMyIP detects the caller's public IP address, writes it into
// the session address and re-enters Lookup with it, so both
// flows share a single lookup path. It returns the state after
// settlement.
func (s *Session) UseMyIP(ctx context.Context) State {
	token := s.beginLoading()
	s.logger.Debug("detecting public IP address")

	publicIP, err := s.detector.IP(ctx)
	switch {
	case errors.Is(err, publicip.ErrNoIPFound),
		errors.Is(err, publicip.ErrNoRecordFound):
		return s.settleError(token, MessageNoPublicIP)
	case err != nil:
		return s.settleError(token, errorMessage(err, MessageDetectionFailed))
	case !publicIP.IsValid():
		return s.settleError(token, MessageNoPublicIP)
	}

	address := publicIP.String()

	s.mutex.Lock()
	if token != s.latest { // a newer request took over during detection
		state := s.state
		s.mutex.Unlock()
		return state
	}
	s.state.Address = address
	s.mutex.Unlock()

	return s.Lookup(ctx, address)
}
