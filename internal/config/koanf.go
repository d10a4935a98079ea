package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ConfigPathEnvVar = "CONFIG_PATH"
	EnvPrefix        = "CLAZZY_"
)

var DefaultConfigPaths = []string{"config.yaml", "/etc/clazzy/config.yaml"}

// legacyEnv maps the plain variables used by container platforms.
var legacyEnv = map[string]string{
	"PORT":           "server.port",
	"GEMINI_API_KEY": "advisor.api_key",
}

// Load reads defaults, then the first config file found, then the environment.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file; an empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps CLAZZY_SECTION_SOME_KEY to section.some_key.
// Returning "" makes koanf skip the variable.
func envTransformFunc(key string) string {
	if mapped, ok := legacyEnv[key]; ok {
		return mapped
	}

	rest, ok := strings.CutPrefix(key, EnvPrefix)
	if !ok {
		return ""
	}

	section, field, ok := strings.Cut(strings.ToLower(rest), "_")
	if !ok || field == "" {
		return ""
	}
	return section + "." + field
}
