package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// earlier configs win for non-zero fields
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://first"}},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://second", Driver: "sqlite3"}},
			Server:  Server{HTTPAddress: "127.0.0.1:9090"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://first", cfg.Storage.DB.DSN, "first source must win")
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver, "later source fills empty fields")
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_Defaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "db/watchparty.sqlite3", Driver: "sqlite3"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestConfigBuilder_DefaultDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/watchparty"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
}

func TestConfigBuilder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
	}{
		{
			name: "missing DSN",
			cfg:  &StructuredConfig{},
		},
		{
			name: "unknown driver",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{DSN: "dsn", Driver: "oracle"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
		})
	}
}

func TestConfigBuilder_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "valid ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "empty host", input: ":8080", want: ":8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"30s"`, want: 30 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
