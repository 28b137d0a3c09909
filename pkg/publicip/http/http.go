// Package http detects the public IP address using HTTP echo
// services such as ipify.
package http

import (
	"context"
	"net/http"
	"net/netip"
	"sync"
	"time"
)

type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	mutex   sync.Mutex
	index   int
	urls    []string
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(settings.providers))
	for i, provider := range settings.providers {
		urls[i] = provider.url()
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		urls:    urls,
	}, nil
}

// IP queries the next echo provider in the rotation and returns
// the public IP address it reports.
func (f *Fetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	f.mutex.Lock()
	url := f.urls[f.index]
	f.index = (f.index + 1) % len(f.urls)
	f.mutex.Unlock()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return fetch(ctx, f.client, url)
}
