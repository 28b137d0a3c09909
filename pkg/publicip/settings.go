package publicip

import (
	nethttp "net/http"

	"github.com/ipwhere/ipwhere/pkg/publicip/dns"
	"github.com/ipwhere/ipwhere/pkg/publicip/http"
)

type HTTPSettings struct {
	Enabled bool
	Client  *nethttp.Client
	Options []http.Option
}

type DNSSettings struct {
	Enabled bool
	Options []dns.Option
}
