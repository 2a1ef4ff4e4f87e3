package config

// validate checks that the final merged [AppConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *AppConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.StateFilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.App.PasswordPepper == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
