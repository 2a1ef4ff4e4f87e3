package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetAppConfig] when a value was not supplied by any
// configuration source. The remote timeouts follow the limits the legacy
// farm system has been observed to tolerate.
const (
	DefaultSubmitTimeout     = 15 * time.Second
	DefaultLoginTimeout      = 10 * time.Second
	DefaultProbeTimeout      = 5 * time.Second
	DefaultLoginProbeTimeout = 2 * time.Second
	DefaultSessionTTL        = time.Hour
	DefaultCredentialTTL     = 30 * 24 * time.Hour
	DefaultMonitorInterval   = 5 * time.Minute
	DefaultSyncInterval      = 5 * time.Minute
)

// AppApp holds application-level settings derived from the shared structured
// config.
type AppApp struct {
	// PasswordPepper is the secret mixed into cached-credential hashes.
	PasswordPepper string
	// LogFile is the optional log file path; empty means stdout.
	LogFile string
}

// AppStorage groups local persistence settings.
type AppStorage struct {
	// DSN is the SQLite file path of the on-device database.
	DSN string
	// StateFilePath is the path of the JSON session/state mirror.
	StateFilePath string
}

// AppRemote holds network settings for the remote system.
type AppRemote struct {
	BaseURL           string
	SubmitTimeout     time.Duration
	LoginTimeout      time.Duration
	ProbeTimeout      time.Duration
	LoginProbeTimeout time.Duration
}

// AppAuth holds session and credential lifetime settings.
type AppAuth struct {
	SessionTTL      time.Duration
	CredentialTTL   time.Duration
	MonitorInterval time.Duration
}

// AppSync holds background synchronization settings.
type AppSync struct {
	Interval    time.Duration
	MaxAttempts int
}

// AppConfig is the top-level application configuration assembled from
// [StructuredConfig].
type AppConfig struct {
	App     AppApp
	Storage AppStorage
	Remote  AppRemote
	Auth    AppAuth
	Sync    AppSync
}

// GetAppConfig merges all configuration sources, maps them onto the
// application view, fills unset durations with defaults, and validates the
// result.
func GetAppConfig() (*AppConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	appCfg := &AppConfig{
		App: AppApp{
			PasswordPepper: cfg.App.PasswordPepper,
			LogFile:        cfg.App.LogFile,
		},
		Storage: AppStorage{
			DSN:           cfg.Storage.DB.DSN,
			StateFilePath: cfg.Storage.StateFilePath,
		},
		Remote: AppRemote{
			BaseURL:           cfg.Remote.BaseURL,
			SubmitTimeout:     cfg.Remote.SubmitTimeout,
			LoginTimeout:      cfg.Remote.LoginTimeout,
			ProbeTimeout:      cfg.Remote.ProbeTimeout,
			LoginProbeTimeout: cfg.Remote.LoginProbeTimeout,
		},
		Auth: AppAuth{
			SessionTTL:      cfg.Auth.SessionTTL,
			CredentialTTL:   cfg.Auth.CredentialTTL,
			MonitorInterval: cfg.Auth.MonitorInterval,
		},
		Sync: AppSync{
			Interval:    cfg.Sync.Interval,
			MaxAttempts: cfg.Sync.MaxAttempts,
		},
	}

	appCfg.applyDefaults()

	return appCfg, appCfg.validate()
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Remote.SubmitTimeout == 0 {
		cfg.Remote.SubmitTimeout = DefaultSubmitTimeout
	}
	if cfg.Remote.LoginTimeout == 0 {
		cfg.Remote.LoginTimeout = DefaultLoginTimeout
	}
	if cfg.Remote.ProbeTimeout == 0 {
		cfg.Remote.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Remote.LoginProbeTimeout == 0 {
		cfg.Remote.LoginProbeTimeout = DefaultLoginProbeTimeout
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = DefaultSessionTTL
	}
	if cfg.Auth.CredentialTTL == 0 {
		cfg.Auth.CredentialTTL = DefaultCredentialTTL
	}
	if cfg.Auth.MonitorInterval == 0 {
		cfg.Auth.MonitorInterval = DefaultMonitorInterval
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
}
