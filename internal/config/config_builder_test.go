package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierSourcesWin(t *testing.T) {
	// Merge semantics: a value already set by an earlier source is not
	// overwritten by a later one. Environment beats flags beats JSON.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Remote: Remote{BaseURL: "https://env.example"},
		},
		&StructuredConfig{
			Remote:  Remote{BaseURL: "https://json.example"},
			Storage: Storage{DB: DB{DSN: "/var/data/mtfa.db"}},
			Sync:    Sync{Interval: 10 * time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.Remote.BaseURL)
	assert.Equal(t, "/var/data/mtfa.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
}

func TestBuild_NoSources(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeConfigFile(t, `{"remote": {"base_url": "https://json.example"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example", cfg.Remote.BaseURL)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		App:     AppApp{PasswordPepper: "pepper"},
		Storage: AppStorage{DSN: "/var/data/mtfa.db", StateFilePath: "/var/data/state.json"},
		Remote:  AppRemote{BaseURL: "https://farm.example"},
	}
	require.NoError(t, valid.validate())

	noDSN := valid
	noDSN.Storage.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noURL := valid
	noURL.Remote.BaseURL = ""
	assert.ErrorIs(t, noURL.validate(), ErrInvalidRemoteConfigs)

	noPepper := valid
	noPepper.App.PasswordPepper = ""
	assert.ErrorIs(t, noPepper.validate(), ErrInvalidAppConfigs)
}
