package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm"
)

func (a *App) initModules() {
	module, err := atm.New(atm.Dependency{
		Config:    a.config,
		Context:   a.ctx,
		ID:        a.uuid,
		Reference: a.reference,
		In:        a.in,
		Out:       a.out,
	})
	if err != nil {
		slog.Error("failed to init module atm", "error", err)
		os.Exit(1)
	}

	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["ATM"] = module.Close
	a.atm = module
}
