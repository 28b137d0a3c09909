package dns

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
)

type Provider string

const (
	OpenDNS    Provider = "opendns"
	Cloudflare Provider = "cloudflare"
)

func ListProviders() []Provider {
	return []Provider{
		OpenDNS,
		Cloudflare,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	nameserver string
	fqdn       string
	class      dns.Class
	qType      dns.Type
}

func (p Provider) data() providerData {
	switch p {
	case OpenDNS:
		return providerData{
			nameserver: "resolver1.opendns.com:53",
			fqdn:       "myip.opendns.com.",
			class:      dns.ClassINET,
			qType:      dns.Type(dns.TypeTXT),
		}
	case Cloudflare:
		return providerData{
			nameserver: "one.one.one.one:53",
			fqdn:       "whoami.cloudflare.",
			class:      dns.ClassCHAOS,
			qType:      dns.Type(dns.TypeTXT),
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}
