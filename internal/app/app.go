package app

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgconfig"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgroutine"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	reference pkguid.NumberID
	goroutine *pkgroutine.Manager

	// console
	in  io.Reader
	out io.Writer
	atm *atm.Module

	exitCode atomic.Int32

	//
	closerFn map[string]func(context.Context) error
}

// New builds the application bound to the process stdin and stdout.
func New() *App {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO builds the application reading console input from in and
// writing console output to out.
func NewWithIO(in io.Reader, out io.Writer) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		in:     in,
		out:    out,
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initModules()
	app.initClosers()

	return app
}

// ExitCode is 1 after a PIN lockout or a failed session, 0 otherwise.
func (a *App) ExitCode() int {
	return int(a.exitCode.Load())
}
