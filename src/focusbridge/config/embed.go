// Package config holds the default configuration compiled into the binary.
package config

import (
	_ "embed"
)

// Base is the default configuration layered beneath any user override files.
//
//go:embed base.yaml
var Base []byte
