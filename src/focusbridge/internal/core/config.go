package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/config"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/fs"
	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_envConfigDir  = "FOCUSBRIDGE_CONFIG_DIR"
	_configDirName = "focusbridge"
	_metaFile      = "meta.yaml"
)

var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

type Config struct {
	provider uber_config.Provider
}

func (c Config) Get(path string) uber_config.Value {
	return c.provider.Get(path)
}

func (c Config) Name() string {
	return "config"
}

// NewConfig loads the embedded defaults and layers any user override files on top.
func NewConfig(bfs fs.BridgeFS) (uber_config.Provider, error) {
	files, err := overrideFiles(bfs)
	if err != nil {
		return nil, err
	}

	options := []uber_config.YAMLOption{uber_config.Source(bytes.NewReader(config.Base))}
	for _, file := range files {
		options = append(options, uber_config.File(file))
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return Config{provider: provider}, nil
}

// overrideFiles returns the existing files listed by meta.yaml in the config directory, in order.
func overrideFiles(bfs fs.BridgeFS) ([]string, error) {
	configDir, err := getConfigDir(bfs)
	if err != nil {
		return nil, err
	}

	if ok, err := bfs.DirExists(configDir); err != nil {
		return nil, fmt.Errorf("failed to stat config directory: %w", err)
	} else if !ok {
		return nil, nil
	}

	metaPath := filepath.Join(configDir, _metaFile)
	if ok, err := bfs.FileExists(metaPath); err != nil {
		return nil, fmt.Errorf("failed to stat meta configuration: %w", err)
	} else if !ok {
		return nil, nil
	}

	metaProvider, err := uber_config.NewYAML(
		uber_config.File(metaPath),
		uber_config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("failed to read files list from meta.yaml: %w", err)
	}

	var validFiles []string
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if ok, err := bfs.FileExists(fullPath); err == nil && ok {
			validFiles = append(validFiles, fullPath)
		}
	}
	return validFiles, nil
}

// getConfigDir returns the path to the override configuration directory
func getConfigDir(bfs fs.BridgeFS) (string, error) {
	if configDir := os.Getenv(_envConfigDir); configDir != "" {
		return configDir, nil
	}

	userDir, err := bfs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(userDir, _configDirName), nil
}
