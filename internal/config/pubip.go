package config

import (
	"fmt"
	"time"

	"github.com/ipwhere/ipwhere/pkg/publicip/dns"
	"github.com/ipwhere/ipwhere/pkg/publicip/http"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type PubIP struct {
	HTTPEnabled   *bool
	HTTPProviders []string
	DNSEnabled    *bool
	DNSProviders  []string
	DNSTimeout    time.Duration
}

func (p *PubIP) setDefaults() {
	p.HTTPEnabled = gosettings.DefaultPointer(p.HTTPEnabled, true)
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders,
		[]string{string(http.Ipify)})
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, true)
	defaultDNSProviders := make([]string, 0, len(dns.ListProviders()))
	for _, provider := range dns.ListProviders() {
		defaultDNSProviders = append(defaultDNSProviders, string(provider))
	}
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, defaultDNSProviders)
	const defaultDNSTimeout = 3 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
}

func (p PubIP) Validate() (err error) {
	for _, provider := range p.HTTPProviders {
		err = http.ValidateProvider(http.Provider(provider))
		if err != nil {
			return fmt.Errorf("HTTP providers: %w", err)
		}
	}

	for _, provider := range p.DNSProviders {
		err = dns.ValidateProvider(dns.Provider(provider))
		if err != nil {
			return fmt.Errorf("DNS providers: %w", err)
		}
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP detection")

	node.Appendf("HTTP enabled: %s", gosettings.BoolToYesNo(p.HTTPEnabled))
	if *p.HTTPEnabled {
		childNode := node.Appendf("HTTP providers")
		for _, provider := range p.HTTPProviders {
			childNode.Appendf(provider)
		}
	}

	node.Appendf("DNS enabled: %s", gosettings.BoolToYesNo(p.DNSEnabled))
	if *p.DNSEnabled {
		node.Appendf("DNS timeout: %s", p.DNSTimeout)
		childNode := node.Appendf("DNS providers")
		for _, provider := range p.DNSProviders {
			childNode.Appendf(provider)
		}
	}

	return node
}

func (p *PubIP) read(reader *reader.Reader) (err error) {
	p.HTTPEnabled, err = reader.BoolPtr("PUBLICIP_HTTP_ENABLED")
	if err != nil {
		return fmt.Errorf("environment variable PUBLICIP_HTTP_ENABLED: %w", err)
	}

	p.HTTPProviders = reader.CSV("PUBLICIP_HTTP_PROVIDERS")

	p.DNSEnabled, err = reader.BoolPtr("PUBLICIP_DNS_ENABLED")
	if err != nil {
		return fmt.Errorf("environment variable PUBLICIP_DNS_ENABLED: %w", err)
	}

	p.DNSProviders = reader.CSV("PUBLICIP_DNS_PROVIDERS")

	p.DNSTimeout, err = reader.Duration("PUBLICIP_DNS_TIMEOUT")
	if err != nil {
		return fmt.Errorf("environment variable PUBLICIP_DNS_TIMEOUT: %w", err)
	}

	return nil
}

// ToHTTPOptions assumes the settings have been validated.
func (p *PubIP) ToHTTPOptions() (options []http.Option) {
	providers := make([]http.Provider, len(p.HTTPProviders))
	for i, provider := range p.HTTPProviders {
		providers[i] = http.Provider(provider)
	}
	return []http.Option{
		http.SetProviders(providers[0], providers[1:]...),
	}
}

// ToDNSOptions assumes the settings have been validated.
func (p *PubIP) ToDNSOptions() (options []dns.Option) {
	providers := make([]dns.Provider, len(p.DNSProviders))
	for i, provider := range p.DNSProviders {
		providers[i] = dns.Provider(provider)
	}
	return []dns.Option{
		dns.SetTimeout(p.DNSTimeout),
		dns.SetProviders(providers[0], providers[1:]...),
	}
}
