package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendGitCLI = "git"
	BackendGoGit  = "go-git"

	// UnknownBranch is returned when the current branch cannot be resolved.
	UnknownBranch = "unknown"

	envPrefix = "DEPDIFF"
)

// Settings is the runtime configuration, merged from an optional config file
// and DEPDIFF_* environment variables. Command-line flags are applied on top by
// the controller.
type Settings struct {
	Backend string `mapstructure:"backend"`
	RepoDir string `mapstructure:"repo_dir"`
	Color   bool   `mapstructure:"color"`
	JSON    bool   `mapstructure:"json"`
}

// NewSettings loads the settings. An empty configPath means only defaults and
// environment variables are used. The result is not validated so that command
// line flags can still override it; call Validate once they are applied.
func NewSettings(configPath string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("backend", BackendGitCLI)
	v.SetDefault("repo_dir", ".")
	v.SetDefault("color", false)
	v.SetDefault("json", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &settings, nil
}

// Validate checks that the settings describe a usable configuration.
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendGitCLI, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", s.Backend, BackendGitCLI, BackendGoGit)
	}
	if s.RepoDir == "" {
		return errors.New("repository directory must not be empty")
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depdiff.yaml",
		".depdiff.yml",
		"depdiff.yaml",
		"depdiff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}
