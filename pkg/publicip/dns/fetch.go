package dns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
)

var (
	ErrNoRecordFound = errors.New("no TXT record found")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client Client, data providerData) (
	publicIP netip.Addr, err error) {
	message := &dns.Msg{
		Question: []dns.Question{{
			Name:   data.fqdn,
			Qtype:  uint16(data.qType),
			Qclass: uint16(data.class),
		}},
	}
	message.Id = dns.Id()
	message.RecursionDesired = true

	response, _, err := client.ExchangeContext(ctx, message, data.nameserver)
	if err != nil {
		return netip.Addr{}, err
	}

	for _, rr := range response.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		for _, s := range txt.Txt {
			publicIP, err = netip.ParseAddr(s)
			if err != nil {
				return netip.Addr{}, fmt.Errorf("%w: %q", ErrIPMalformed, s)
			}
			return publicIP, nil
		}
	}

	return netip.Addr{}, fmt.Errorf("%w: from %s for %s",
		ErrNoRecordFound, data.nameserver, data.fqdn)
}
