package navkit

import (
	"context"
	"crypto/rand"
	"os"
	"path/filepath"

	"github.com/meridianbank/navkit/pkg/navkit/config"
	"github.com/meridianbank/navkit/pkg/navkit/constants"
	"github.com/meridianbank/navkit/pkg/navkit/coordinator"
	"github.com/meridianbank/navkit/pkg/navkit/deeplink"
	"github.com/meridianbank/navkit/pkg/navkit/internal"
	"github.com/meridianbank/navkit/pkg/navkit/keychain"
	"github.com/meridianbank/navkit/pkg/navkit/services"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

// Options configures Init.
type Options struct {
	ConfigPath string // TOML config file; empty falls back to BANKAPP_CONFIG, then defaults
	LogPath    string // overrides the config's log path
}

// Kit bundles the wired dependency graph for the binaries and the view
// layer.
type Kit struct {
	Config        config.Config
	Parser        *deeplink.Parser
	Builder       *view.Builder
	Auth          *services.Auth
	Accounts      *services.Accounts
	Notifications *services.Notifications
	Keychain      *keychain.Store
	App           *coordinator.App
}

// Init loads configuration, initializes logging, and constructs the
// dependency graph. Call Start on the result to begin auth observation, and
// Shutdown at process teardown.
func Init(opts Options) (*Kit, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, NewSetupError("load_config", err)
	}

	if opts.LogPath != "" {
		cfg.LogPath = opts.LogPath
	}
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	log := internal.Component("navkit")
	log.Info("starting", "config", cfg.String())

	kcDir := cfg.KeychainDir
	if kcDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = os.TempDir()
		}
		kcDir = filepath.Join(base, "bankapp")
	}
	secret, err := deviceSecret(kcDir)
	if err != nil {
		return nil, NewSetupError("device_secret", err)
	}
	kc, err := keychain.Open(kcDir, secret)
	if err != nil {
		return nil, NewSetupError("open_keychain", err)
	}

	builder, err := view.NewBuilder(cfg.Locale)
	if err != nil {
		return nil, NewSetupError("load_messages", err)
	}

	auth := services.NewAuth(kc)
	parser := deeplink.NewParser(cfg.Scheme)
	app := coordinator.NewApp(coordinator.Options{
		Parser:     parser,
		Auth:       auth,
		Builder:    builder,
		DefaultTab: cfg.Tab(),
		DepthLimit: cfg.NavDepthLimit,
	})

	return &Kit{
		Config:        cfg,
		Parser:        parser,
		Builder:       builder,
		Auth:          auth,
		Accounts:      services.NewAccounts(),
		Notifications: services.NewNotifications(),
		Keychain:      kc,
		App:           app,
	}, nil
}

// Start begins the app coordinator's lifetime auth subscription.
func (k *Kit) Start(ctx context.Context) {
	k.App.Start(ctx)
}

// Shutdown flushes and closes process-wide resources.
func Shutdown() {
	internal.CloseLogger()
}

// deviceSecret loads the per-install secret, creating it on first run. It
// stands in for the hardware-backed device identity of a real handset.
func deviceSecret(dir string) ([]byte, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "device.secret")
	if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
		return b, nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return nil, err
	}
	return b, nil
}
