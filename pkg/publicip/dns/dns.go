// Package dns detects the public IP address using DNS echo
// resolvers such as OpenDNS and Cloudflare.
package dns

import (
	"context"
	"net/netip"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

// Client is the interface of the underlying DNS client used by
// this package. You SHOULD NOT use this interface anywhere as it
// is implementation specific.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type Fetcher struct {
	client    Client
	counter   atomic.Uint32
	providers []Provider
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client: &dns.Client{
			Timeout: settings.timeout,
		},
		providers: settings.providers,
	}, nil
}

// IP queries the next echo resolver in the rotation and returns
// the public IP address it reports.
func (f *Fetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	index := int(f.counter.Add(1)) % len(f.providers)
	provider := f.providers[index]
	return fetch(ctx, f.client, provider.data())
}
