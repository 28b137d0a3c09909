package session

import (
	"context"
	"net/netip"

	"github.com/ipwhere/ipwhere/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . GeoLookuper,IPDetector

type GeoLookuper interface {
	Lookup(ctx context.Context, address string) (result models.LookupResult, err error)
}

type IPDetector interface {
	IP(ctx context.Context) (publicIP netip.Addr, err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
