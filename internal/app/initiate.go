package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgconfig"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkglog"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgroutine"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkguid"
)

const defaultConfigPath = "./config/config.yaml"

// defaultConfig applies to every key the config file leaves out.
var defaultConfig = map[string]any{
	"tz":                    "",
	"log.level":             "info",
	"bank.name":             "Pillar Bank",
	"bank.currency":         "PHP",
	"atm.max_pin_attempts":  3,
	"atm.withdraw_multiple": "100",
	"atm.ask_another":       true,
	"atm.receipt":           true,
	"atm.log_timestamp":     false,
	"statement.capacity":    5,
	"bills.billers":         "Electricity,Water,WiFi",
	"bills.confirm_account": false,
	"audit.enabled":         true,
	"audit.buffer":          64,
	"audit.workers":         1,
	"audit.dedupe_window":   1024,
}

func (a *App) initConfig() {
	path := defaultConfigPath
	if env := os.Getenv("ATM_CONFIG"); env != "" {
		path = env
	}

	cfg, err := pkgconfig.NewViperOrDefaults(path, defaultConfig)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(os.Stderr, a.config.GetString("log.level"))

	if cfg, ok := a.config.(*pkgconfig.Viper); ok && !cfg.FromFile() {
		slog.Info("config file not found, using defaults")
	}
}

func (a *App) initLibraries() {
	// one console session plus the signal watcher
	a.goroutine = pkgroutine.NewManager(2)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Warn("snowflake unavailable, falling back to sequential references", "error", err)
		a.reference = pkguid.NewSequence(1)
		return
	}
	a.reference = sf
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
