package http

import (
	"errors"
	"fmt"
	"strings"
)

type Provider string

const (
	Ipify     Provider = "ipify"
	Icanhazip Provider = "icanhazip"
	Ifconfig  Provider = "ifconfig"
	Ident     Provider = "ident"
	Seeip     Provider = "seeip"
)

func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Icanhazip,
		Ifconfig,
		Ident,
		Seeip,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

func ValidateProvider(provider Provider) error {
	if strings.HasPrefix(string(provider), "url:https://") { // custom HTTP url
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

func (provider Provider) url() string {
	switch provider {
	case Ipify:
		// ?format=json makes ipify return {"ip":"x.x.x.x"}.
		return "https://api64.ipify.org?format=json"
	case Icanhazip:
		return "https://icanhazip.com"
	case Ifconfig:
		return "https://ifconfig.io/ip"
	case Ident:
		return "https://ident.me"
	case Seeip:
		return "https://api.seeip.org"
	}

	if s := string(provider); strings.HasPrefix(s, "url:") {
		return strings.TrimPrefix(s, "url:")
	}

	return ""
}

// CustomProvider creates a provider from a custom HTTPS URL.
// The URL must echo the caller's public IP address, either as
// plain text or as a JSON object with an "ip" field.
func CustomProvider(httpsURL string) Provider {
	return Provider("url:" + httpsURL)
}
