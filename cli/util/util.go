package util

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelda/harness/pkg/cfgdir"
	"github.com/kelda/harness/pkg/errors"
)

// GlobalFlags are the flags shared by every command. Flags that are set
// override the settings file.
type GlobalFlags struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	NoColor    bool
}

// Register adds the flags to cmd and all of its subcommands.
func (f *GlobalFlags) Register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.ConfigPath, "config", cfgdir.DefaultPath, "path to the settings file")
	flags.StringVar(&f.LogLevel, "log-level", "", "log level (overrides the settings file)")
	flags.StringVar(&f.LogFormat, "log-format", "", "log format, text or json (overrides the settings file)")
	flags.BoolVar(&f.NoColor, "no-color", false, "disable coloured output")
}

// Config reads the settings file and applies the flags on top of it.
func (f GlobalFlags) Config() (cfgdir.Config, error) {
	config, err := cfgdir.ParseConfig(f.ConfigPath)
	if err != nil {
		return cfgdir.Config{}, errors.WithContext("parse settings", err)
	}

	if f.LogLevel != "" {
		config.LogLevel = f.LogLevel
	}
	if f.LogFormat != "" {
		config.LogFormat = f.LogFormat
	}
	if f.NoColor {
		color := false
		config.Color = &color
	}
	return config, nil
}

// ColorEnabled returns whether output should be coloured. If the settings
// file can't be read, only the flag is considered.
func (f GlobalFlags) ColorEnabled() bool {
	config, err := f.Config()
	if err != nil {
		return !f.NoColor
	}
	return config.ColorEnabled()
}

// NewLogger returns a logger that writes to out using the configured level
// and format.
func NewLogger(config cfgdir.Config, out io.Writer) (*log.Logger, error) {
	level, err := config.Level()
	if err != nil {
		return nil, err
	}

	formatter, err := config.Formatter()
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(formatter)
	return logger, nil
}
