// Package commands provides CLI command handlers for yangtools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openmgmt/yangtools/internal/cliutil"
	"github.com/openmgmt/yangtools/parser"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/validator"
	"gopkg.in/yaml.v3"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseValidationMode maps a -mode argument to its validator constant.
func ParseValidationMode(s string) (validator.Mode, error) {
	switch s {
	case "", "default":
		return validator.ModeDefault, nil
	case "config":
		return validator.ModeConfig, nil
	case "edit":
		return validator.ModeEdit, nil
	case "get":
		return validator.ModeGet, nil
	case "get-config":
		return validator.ModeGetConfig, nil
	case "rpc":
		return validator.ModeRPC, nil
	case "rpc-reply":
		return validator.ModeRPCReply, nil
	case "notification":
		return validator.ModeNotification, nil
	case "notification-filter":
		return validator.ModeNotifFilter, nil
	default:
		return validator.ModeDefault, fmt.Errorf("invalid mode '%s'. Valid modes: default, config, edit, get, get-config, rpc, rpc-reply, notification, notification-filter", s)
	}
}

// LoadSchema compiles the schema document at path, or from stdin when path
// is "-".
func LoadSchema(path string) (*schema.Module, error) {
	opts := sourceOptions(path, "stdin-schema")
	mod, err := parser.ParseSchema(opts...)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return mod, nil
}

// sourceOptions builds parser source options for a file path or stdin.
func sourceOptions(path, stdinName string) []parser.Option {
	if path == StdinFilePath {
		return []parser.Option{
			parser.WithReader(os.Stdin),
			parser.WithSourceName(stdinName),
		}
	}
	return []parser.Option{parser.WithFilePath(path)}
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}
