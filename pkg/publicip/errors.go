package publicip

import (
	"github.com/ipwhere/ipwhere/pkg/publicip/dns"
	"github.com/ipwhere/ipwhere/pkg/publicip/http"
)

// Sentinel errors from the detection methods, re-exported so
// callers can distinguish "the echo service answered but no
// address was found" from transport failures.
var (
	ErrNoIPFound     = http.ErrNoIPFound
	ErrNoRecordFound = dns.ErrNoRecordFound
)
