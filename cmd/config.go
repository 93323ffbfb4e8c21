package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"exprc/common"
	"exprc/report"

	"github.com/pelletier/go-toml"
)

// tomlConfig represents the build configuration as it is encoded in TOML.
type tomlConfig struct {
	Build tomlBuildConfig `toml:"build"`
}

type tomlBuildConfig struct {
	Entry        string `toml:"entry"`
	TargetTriple string `toml:"target-triple"`
	OutputDir    string `toml:"output-dir"`
	LogLevel     string `toml:"loglevel"`
}

// BuildConfig is the validated build configuration used by the compiler.
type BuildConfig struct {
	// Entry is the name of the generated entry symbol.
	Entry string

	// TargetTriple is the target triple recorded in generated LLVM modules.
	// It is empty if no target is configured.
	TargetTriple string

	// OutputDir is the directory relative output paths are resolved against.
	OutputDir string

	// LogLevel is the configured log level.  It is only meaningful if
	// HasLogLevel is set.
	LogLevel    int
	HasLogLevel bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *BuildConfig {
	return &BuildConfig{
		Entry:     common.DefaultEntryName,
		OutputDir: ".",
		LogLevel:  report.LogLevelVerbose,
	}
}

// LoadConfig loads the build configuration at path.  If path is empty, the
// default config file is looked up in the working directory and silently
// skipped if it does not exist.  A config file named explicitly must exist.
func LoadConfig(path string) (*BuildConfig, error) {
	explicit := path != ""
	if !explicit {
		path = common.ConfigFileName
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}

		return nil, fmt.Errorf("unable to open config file at `%s`: %w", path, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading config file at `%s`: %w", path, err)
	}

	config, err := ParseConfig(buff)
	if err != nil {
		return nil, fmt.Errorf("error in config file at `%s`: %w", path, err)
	}

	// relative output directories are relative to the config file
	if !filepath.IsAbs(config.OutputDir) {
		config.OutputDir = filepath.Join(filepath.Dir(path), config.OutputDir)
	}

	return config, nil
}

// ParseConfig decodes and validates the contents of a config file.
func ParseConfig(buff []byte) (*BuildConfig, error) {
	tomlConf := &tomlConfig{}
	if err := toml.Unmarshal(buff, tomlConf); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := validateConfig(config, &tomlConf.Build); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig checks the decoded build table and moves its values into the
// build config.
func validateConfig(config *BuildConfig, tomlBuild *tomlBuildConfig) error {
	if tomlBuild.Entry != "" {
		if !IsValidSymbol(tomlBuild.Entry) {
			return fmt.Errorf("entry `%s` is not a valid symbol name", tomlBuild.Entry)
		}

		config.Entry = tomlBuild.Entry
	}

	if tomlBuild.LogLevel != "" {
		level, ok := report.LogLevelFromName(tomlBuild.LogLevel)
		if !ok {
			return fmt.Errorf("unknown log level `%s`", tomlBuild.LogLevel)
		}

		config.LogLevel = level
		config.HasLogLevel = true
	}

	if tomlBuild.OutputDir != "" {
		config.OutputDir = tomlBuild.OutputDir
	}

	config.TargetTriple = tomlBuild.TargetTriple
	return nil
}

// IsValidSymbol returns whether name can be used as an assembler symbol: a
// letter, underscore, dot or dollar sign followed by any number of those or
// decimal digits.
func IsValidSymbol(name string) bool {
	if name == "" {
		return false
	}

	for i, c := range name {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_', c == '.', c == '$':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
