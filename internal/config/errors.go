package config

import "errors"

var (
	// ErrMissingConfigValue is returned by validation when a required value
	// is absent from every configuration source.
	ErrMissingConfigValue = errors.New("missing required config value")

	// ErrInvalidConfigValue is returned by validation when a value is present
	// but outside its allowed range.
	ErrInvalidConfigValue = errors.New("invalid config value")
)
