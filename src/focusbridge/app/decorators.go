package app

import (
	"fmt"
	"os"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/core"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/fs"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
)

type Context struct {
	Environment        string `yaml:"environment"`
	RuntimeEnvironment string `yaml:"runtimeEnvironment"`
}

const (
	// EnvLocal indicates a normal desktop run.
	EnvLocal = "local"

	// EnvDevelopment switches logging to a verbose, human readable format.
	EnvDevelopment = "development"

	// Environment variables
	_envFocusBridgeEnvironment = "FOCUSBRIDGE_ENVIRONMENT"
)

// Sinks that zap.Open resolves without a file path.
var _standardSinks = map[string]bool{
	"stdout": true,
	"stderr": true,
}

func decorateEnvContext(env Context) Context {
	envValue := EnvLocal
	if os.Getenv(_envFocusBridgeEnvironment) == EnvDevelopment {
		envValue = EnvDevelopment
	}

	env.Environment = envValue
	env.RuntimeEnvironment = envValue
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.BridgeFS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	cfg := p.Cfg
	if p.Env.Environment == EnvDevelopment {
		var err error
		if cfg, err = withDevelopmentLogging(cfg); err != nil {
			return nil, fmt.Errorf("applying development logging: %v", err)
		}
	}

	combined, err := ensureLogFolder(cfg, p.FS)
	if err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}

	return combined, nil
}

// withDevelopmentLogging layers debug level console logging over cfg.
func withDevelopmentLogging(cfg config.Provider) (config.Provider, error) {
	overrides, err := config.NewStaticProvider(map[string]interface{}{
		"logging": map[string]interface{}{
			"level":       "debug",
			"development": true,
			"encoding":    "console",
		},
	})
	if err != nil {
		return nil, err
	}
	return config.NewProviderGroup("development", cfg, overrides)
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider, fs fs.BridgeFS) (config.Provider, error) {
	var c core.LoggingConfig
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return nil, fmt.Errorf("loading logging config: %v", err)
	}

	for _, outputPath := range c.OutputPaths {
		if _standardSinks[outputPath] {
			continue
		}
		dir := mapper.DirName(outputPath)
		if dir == "" {
			continue
		}
		if err := fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("creating logging directory: %v", err)
		}
	}

	return cfg, nil
}
