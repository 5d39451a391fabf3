package cfgdir

import (
	"os"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/kelda/harness/pkg/errors"
)

// DefaultPath is where the settings file is read from unless another path is
// given.
const DefaultPath = "~/.harness.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

var fs = afero.NewOsFs()

// Config holds the user's settings. Any field left out of the file keeps its
// default.
type Config struct {
	LogLevel  string `json:"logLevel,omitempty"`
	LogFormat string `json:"logFormat,omitempty"`
	Color     *bool  `json:"color,omitempty"`
}

// Default returns the settings used when there's no settings file.
func Default() Config {
	color := true
	return Config{
		LogLevel:  log.InfoLevel.String(),
		LogFormat: FormatText,
		Color:     &color,
	}
}

// ParseConfig reads the settings file at path. A missing file isn't an
// error, and results in the default settings.
func ParseConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, errors.WithContext("expand config path", err)
	}

	configBytes, err := afero.ReadFile(fs, expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.WithContext("read", err)
	}

	var config Config
	if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return Config{}, errors.WithContext("parse yaml", err)
	}

	config = config.withDefaults()
	if _, err := config.Level(); err != nil {
		return Config{}, err
	}
	if _, err := config.Formatter(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Save writes the settings to path.
func (config Config) Save(path string) error {
	if path == "" {
		path = DefaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return errors.WithContext("expand config path", err)
	}

	configBytes, err := yaml.Marshal(config)
	if err != nil {
		return errors.WithContext("marshal yaml", err)
	}

	if err := afero.WriteFile(fs, expanded, configBytes, 0600); err != nil {
		return errors.WithContext("write", err)
	}
	return nil
}

// Level returns the configured log level.
func (config Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return 0, errors.NewFriendlyError("Invalid log level %q. "+
			"Valid levels are: panic, fatal, error, warn, info, debug, trace.", config.LogLevel)
	}
	return level, nil
}

// Formatter returns the log formatter for the configured format.
func (config Config) Formatter() (log.Formatter, error) {
	switch config.LogFormat {
	case FormatText:
		return &log.TextFormatter{FullTimestamp: true, DisableColors: !config.ColorEnabled()}, nil
	case FormatJSON:
		return &log.JSONFormatter{}, nil
	}
	return nil, errors.NewFriendlyError("Invalid log format %q. Valid formats are: %s, %s.",
		config.LogFormat, FormatText, FormatJSON)
}

// ColorEnabled returns whether output should be coloured.
func (config Config) ColorEnabled() bool {
	return config.Color == nil || *config.Color
}

func (config Config) withDefaults() Config {
	def := Default()
	if config.LogLevel == "" {
		config.LogLevel = def.LogLevel
	}
	if config.LogFormat == "" {
		config.LogFormat = def.LogFormat
	}
	if config.Color == nil {
		config.Color = def.Color
	}
	return config
}
