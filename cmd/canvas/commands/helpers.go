package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/canvascms/canvas-go/internal/constants"
	"github.com/canvascms/canvas-go/pkg/canvas"
	"github.com/canvascms/canvas-go/pkg/canvasclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	// Timestamp rendering.
	timeFormat = "2006-01-02 15:04:05"
)

// CreateClient builds a canvas.Client from the CLI configuration. Token and
// project fall through viper (flags, config file, environment) and finally
// the library's own environment fallback.
func CreateClient() (canvas.Client, error) {
	config := &canvas.Config{
		Token:     viper.GetString("token"),
		ProjectID: viper.GetString("project"),
		BaseURL:   viper.GetString("base-url"),
		Debug:     viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = stderrLogger{}
	}

	client, err := canvasclient.New(config)
	if err != nil {
		switch {
		case errors.Is(err, canvas.ErrMissingToken):
			return nil, constants.ErrNotLoggedIn
		case errors.Is(err, canvas.ErrMissingProject):
			return nil, constants.ErrNoProject
		}

		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.YAMLIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// categorySlugs renders a category list as a comma-joined slug string.
func categorySlugs(categories []canvas.Category) string {
	if len(categories) == 0 {
		return NotAvailable
	}

	slugs := make([]string, 0, len(categories))
	for _, category := range categories {
		slugs = append(slugs, category.Slug)
	}

	return strings.Join(slugs, ", ")
}

// stderrLogger is the CLI's canvas.Logger: plain line-oriented output on
// stderr, used only with --verbose.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}
