package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/openmgmt/yangtools"
	"github.com/openmgmt/yangtools/parser"
	"github.com/openmgmt/yangtools/unres"
	"github.com/openmgmt/yangtools/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Schema        string
	Mode          string
	Trusted       bool
	CheckObsolete bool
	NoWarnings    bool
	Quiet         bool
	Format        string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Schema, "schema", "", "schema document to validate against (required)")
	fs.StringVar(&flags.Mode, "mode", "", "validation mode: default, config, edit, get, get-config, rpc, rpc-reply, notification, notification-filter")
	fs.BoolVar(&flags.Trusted, "trusted", false, "skip structural checks for data from a trusted source")
	fs.BoolVar(&flags.CheckObsolete, "check-obsolete", false, "report use of obsolete definitions as errors")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yangtools validate -schema <model.yaml> [flags] <data.yaml|->\n\n")
		Writef(fs.Output(), "Validate a YAML instance document against a compiled schema module.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  yangtools validate -schema model.yaml config.yaml\n")
		Writef(fs.Output(), "  yangtools validate -schema model.yaml -mode config config.yaml\n")
		Writef(fs.Output(), "  yangtools validate -schema model.yaml -check-obsolete config.yaml\n")
		Writef(fs.Output(), "  cat config.yaml | yangtools validate -schema model.yaml -q -\n")
		Writef(fs.Output(), "  yangtools validate -schema model.yaml -format json config.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the data path to read from stdin\n")
		Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(fs.Output(), "  - Use --format json/yaml for structured output that can be parsed\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one data file path or '-' for stdin")
	}
	if flags.Schema == "" {
		fs.Usage()
		return fmt.Errorf("schema document is required (use -schema)")
	}

	// Validate format and mode flags early to fail fast before expensive
	// operations.
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	mode, err := ParseValidationMode(flags.Mode)
	if err != nil {
		return err
	}

	dataPath := fs.Arg(0)

	startTime := time.Now()
	mod, err := LoadSchema(flags.Schema)
	if err != nil {
		return err
	}

	root, err := parser.ParseData(mod, sourceOptions(dataPath, "stdin")...)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	queue := &unres.Queue{}
	result, err := validator.ValidateTree(root,
		validator.WithMode(mode),
		validator.WithTrusted(flags.Trusted),
		validator.WithObsoleteCheck(flags.CheckObsolete),
		validator.WithQueue(queue),
	)
	if err != nil {
		return fmt.Errorf("validating data: %w", err)
	}
	totalTime := time.Since(startTime)

	if flags.NoWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}

		// Exit with error if validation failed
		if !result.Valid {
			os.Exit(1)
		}

		return nil
	}

	// Text format output. Diagnostics go to stderr so stdout stays clean
	// for pipelining.
	if !flags.Quiet {
		Writef(os.Stderr, "YANG Instance Data Validator\n")
		Writef(os.Stderr, "============================\n\n")
		Writef(os.Stderr, "yangtools version: %s\n", yangtools.Version())
		Writef(os.Stderr, "Schema: %s (module %s)\n", flags.Schema, mod.Name)
		Writef(os.Stderr, "Data: %s\n", dataPath)
		Writef(os.Stderr, "Mode: %s\n", mode)
		Writef(os.Stderr, "Nodes: %d\n", result.NodeCount)
		Writef(os.Stderr, "Deferred: %d\n", result.Deferred)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Errors) > 0 {
			Writef(os.Stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				Writef(os.Stderr, "  %s\n", e.String())
			}
			Writef(os.Stderr, "\n")
		}

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", result.WarningCount)
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  %s\n", warning.String())
			}
			Writef(os.Stderr, "\n")
		}

		if result.Valid {
			Writef(os.Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Exit with error if validation failed
	if !result.Valid {
		os.Exit(1)
	}

	return nil
}
