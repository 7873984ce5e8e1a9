// SPDX-License-Identifier: Apache-2.0

package config

// Fallback values applied when no configuration source supplies one.
const (
	DefaultHTTPAddress = ":8080"
	DefaultDBDriver    = "pgx"
)

// applyDefaults fills in fallback values for fields that remained zero after
// all sources were merged. Only the listen address and driver have sensible
// defaults; the DSN must always come from a source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
