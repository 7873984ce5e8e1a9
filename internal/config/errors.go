package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration
	// has no usable database settings (missing DSN or unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
)
