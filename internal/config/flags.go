package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path (SQLite file)
//	-base-url remote system root URL
//	-state-file session/state mirror file path
//	-log-file application log file path
//	-pepper credential hashing pepper
//	-c/-config json file path with configs
//	-sync-interval background sync interval (e.g., "5m")
//	-sync-max-attempts per-record delivery attempt cap (0 = unlimited)
//	-session-ttl session lifetime after remote login (e.g., "1h")
//	-credential-ttl cached credential validity window (e.g., "720h")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var baseURL string
	var stateFilePath string
	var logFilePath string
	var pepper string
	var jsonConfigPath string
	var syncInterval time.Duration
	var syncMaxAttempts int
	var sessionTTL time.Duration
	var credentialTTL time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&baseURL, "base-url", "", "Remote system root URL")
	flag.StringVar(&stateFilePath, "state-file", "", "Session state file path")
	flag.StringVar(&logFilePath, "log-file", "", "Log file path")
	flag.StringVar(&pepper, "pepper", "", "Credential hashing pepper")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&syncMaxAttempts, "sync-max-attempts", 0, "Delivery attempt cap per record (0 = unlimited)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 1h)")
	flag.DurationVar(&credentialTTL, "credential-ttl", 0, "Cached credential validity window (e.g., 720h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordPepper: pepper,
			LogFile:        logFilePath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			StateFilePath: stateFilePath,
		},
		Remote: Remote{
			BaseURL: baseURL,
		},
		Auth: Auth{
			SessionTTL:    sessionTTL,
			CredentialTTL: credentialTTL,
		},
		Sync: Sync{
			Interval:    syncInterval,
			MaxAttempts: syncMaxAttempts,
		},
		JSONFilePath: jsonConfigPath,
	}
}
