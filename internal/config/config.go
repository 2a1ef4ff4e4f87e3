package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the credential pepper
	// and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence layer: the
	// SQLite database and the JSON state file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the base URL and timeouts for the remote farm system.
	Remote Remote `envPrefix:"REMOTE_"`

	// Auth holds session and cached-credential lifetime settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Sync holds background synchronization settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordPepper is the secret mixed into every cached-credential hash.
	// Must be kept confidential.
	// Env: APP_PASSWORD_PEPPER
	PasswordPepper string `env:"PASSWORD_PEPPER"`

	// LogFile is an optional path for the application log. When empty the
	// log goes to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local persistence layer.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`

	// StateFilePath is the path of the JSON file mirroring the in-memory
	// session and the last-sync-attempt timestamp.
	// Env: STORAGE_STATE_FILE
	StateFilePath string `env:"STATE_FILE"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (or connection string) of the on-device
	// database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the remote farm-management system.
type Remote struct {
	// BaseURL is the root URL of the remote system. All endpoint paths are
	// resolved against it.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// SubmitTimeout bounds one load submission request.
	// Env: REMOTE_SUBMIT_TIMEOUT
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT"`

	// LoginTimeout bounds each of the two remote login calls.
	// Env: REMOTE_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`

	// ProbeTimeout bounds the connectivity probe issued before a batch
	// sync.
	// Env: REMOTE_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// LoginProbeTimeout bounds the short connectivity pre-check issued
	// before a login attempt.
	// Env: REMOTE_LOGIN_PROBE_TIMEOUT
	LoginProbeTimeout time.Duration `env:"LOGIN_PROBE_TIMEOUT"`
}

// Auth holds session and credential lifetime settings.
type Auth struct {
	// SessionTTL is the lifetime of a session obtained from a successful
	// remote login.
	// Env: AUTH_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// CredentialTTL is the validity window of a cached credential counted
	// from its last successful remote login.
	// Env: AUTH_CREDENTIAL_TTL
	CredentialTTL time.Duration `env:"CREDENTIAL_TTL"`

	// MonitorInterval is the tick interval of the session-expiry monitor.
	// Env: AUTH_MONITOR_INTERVAL
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`
}

// Sync holds background synchronization settings.
type Sync struct {
	// Interval defines how often the periodic batch sync runs.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts caps delivery attempts per pending record. Zero means
	// retry without limit, which is the historical behavior.
	// Env: SYNC_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}
