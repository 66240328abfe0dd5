package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgerror"
)

// Start runs the console session in the background. The returned channel is
// closed when the session ends or a termination signal arrives.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})
	var once sync.Once
	terminate := func() {
		once.Do(func() { close(terminateChan) })
	}

	a.goroutine.Go(a.ctx, func(ctx context.Context) error {
		defer terminate()

		err := a.atm.Run(ctx)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, pkgerror.ErrPINLockout):
			a.exitCode.Store(1)
			return nil
		default:
			a.exitCode.Store(1)
			slog.ErrorContext(ctx, "console session failed", "error", err)
			return err
		}
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			slog.Info("termination signal received")
			if a.cancel != nil {
				a.cancel()
			}
			terminate()
		case <-a.ctx.Done():
		}
	}()

	return terminateChan
}

// Stop cancels the session, waits for it within ctx and releases resources.
// A session blocked on console input is abandoned when ctx ends.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.WaitContext(ctx); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	} else {
		slog.InfoContext(ctx, "all goroutines have finished successfully")
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown", "exit_code", a.ExitCode())
}
