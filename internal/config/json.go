package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "5m" instead of
// nanosecond counts.
type StructuredJSONConfig struct {
	App struct {
		PasswordPepper string `json:"password_pepper"`
		LogFile        string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		StateFilePath string `json:"state_file"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL           string   `json:"base_url"`
		SubmitTimeout     Duration `json:"submit_timeout"`
		LoginTimeout      Duration `json:"login_timeout"`
		ProbeTimeout      Duration `json:"probe_timeout"`
		LoginProbeTimeout Duration `json:"login_probe_timeout"`
	} `json:"remote,omitempty"`

	Auth struct {
		SessionTTL      Duration `json:"session_ttl"`
		CredentialTTL   Duration `json:"credential_ttl"`
		MonitorInterval Duration `json:"monitor_interval"`
	} `json:"auth,omitempty"`

	Sync struct {
		Interval    Duration `json:"interval"`
		MaxAttempts int      `json:"max_attempts"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordPepper: jsonCfg.App.PasswordPepper,
			LogFile:        jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			StateFilePath: jsonCfg.Storage.StateFilePath,
		},
		Remote: Remote{
			BaseURL:           jsonCfg.Remote.BaseURL,
			SubmitTimeout:     time.Duration(jsonCfg.Remote.SubmitTimeout),
			LoginTimeout:      time.Duration(jsonCfg.Remote.LoginTimeout),
			ProbeTimeout:      time.Duration(jsonCfg.Remote.ProbeTimeout),
			LoginProbeTimeout: time.Duration(jsonCfg.Remote.LoginProbeTimeout),
		},
		Auth: Auth{
			SessionTTL:      time.Duration(jsonCfg.Auth.SessionTTL),
			CredentialTTL:   time.Duration(jsonCfg.Auth.CredentialTTL),
			MonitorInterval: time.Duration(jsonCfg.Auth.MonitorInterval),
		},
		Sync: Sync{
			Interval:    time.Duration(jsonCfg.Sync.Interval),
			MaxAttempts: jsonCfg.Sync.MaxAttempts,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
