// Package publicip detects the caller's public IP address using
// HTTP echo services and/or DNS echo resolvers.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/ipwhere/ipwhere/pkg/publicip/dns"
	"github.com/ipwhere/ipwhere/pkg/publicip/http"
)

type ipFetcher interface {
	IP(ctx context.Context) (ip netip.Addr, err error)
}

// Fetcher detects the public IP address, trying each enabled
// detection method in order until one succeeds.
type Fetcher struct {
	fetchers []ipFetcher
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(httpSettings HTTPSettings, dnsSettings DNSSettings) (
	f *Fetcher, err error) {
	f = new(Fetcher)

	if httpSettings.Enabled {
		subFetcher, err := http.New(httpSettings.Client, httpSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating HTTP fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if dnsSettings.Enabled {
		subFetcher, err := dns.New(dnsSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating DNS fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if len(f.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return f, nil
}

// IP returns the first public IP address successfully detected.
// The last detection error is returned if every method fails.
func (f *Fetcher) IP(ctx context.Context) (ip netip.Addr, err error) {
	for _, fetcher := range f.fetchers {
		ip, err = fetcher.IP(ctx)
		if err == nil {
			return ip, nil
		}
	}
	return netip.Addr{}, err
}
