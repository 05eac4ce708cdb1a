// Package commands implements the rbx CLI commands.
package commands

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rbxweb/rbxweb/internal/constants"
	"github.com/rbxweb/rbxweb/pkg/rbx"
	"github.com/rbxweb/rbxweb/pkg/rbxclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// zerologAdapter exposes a zerolog logger through the rbx.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// newLogger builds the CLI logger. Verbose mode lowers the level to debug so
// the HTTP layer's request/response logging shows up.
func newLogger(verbose bool) rbx.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

// CreateClient builds an API client from the effective viper configuration.
func CreateClient() (rbx.Client, error) {
	verbose := viper.GetBool("verbose")

	config := &rbx.Config{
		BaseDomain: viper.GetString("domain"),
		Cookie:     viper.GetString("cookie"),
		Debug:      verbose,
		Logger:     newLogger(verbose),
	}

	return rbxclient.New(config)
}

// parseID parses a positive int64 command argument.
func parseID(arg string, invalid error) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}

	return id, nil
}

// maskSecret hides all but a short prefix of a secret value.
func maskSecret(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	const visible = 4
	if len(value) <= visible {
		return constants.MaskedSecret
	}

	return value[:visible] + constants.MaskedSecret
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() {
		_ = encoder.Close()
	}()

	return encoder.Encode(v)
}
