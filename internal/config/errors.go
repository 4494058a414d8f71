package config

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidSize   = errors.New("invalid window size")
	ErrLoadConfig    = errors.New("load config failed")
)
