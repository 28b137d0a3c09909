package server

import (
	"context"

	"github.com/ipwhere/ipwhere/internal/session"
)

type Orchestrator interface {
	Lookup(ctx context.Context, target string) session.State
	UseMyIP(ctx context.Context) session.State
	SetAddress(address string)
	State() session.State
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
