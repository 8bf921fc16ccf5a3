package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/openmgmt/yangtools"
	"github.com/openmgmt/yangtools/generator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output       string
	Package      string
	SkipObsolete bool
	NoFeatures   bool
	NoIdentities bool
	Quiet        bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory (required)")
	fs.StringVar(&flags.Package, "package", "", "Go package name for generated code (default \"ids\")")
	fs.BoolVar(&flags.SkipObsolete, "skip-obsolete", false, "omit obsolete identities from generated code")
	fs.BoolVar(&flags.NoFeatures, "no-features", false, "don't generate feature name constants")
	fs.BoolVar(&flags.NoIdentities, "no-identities", false, "don't generate identity name constants")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yangtools generate -o <dir> [flags] <model.yaml>\n\n")
		Writef(fs.Output(), "Generate Go constants for a module's feature and identity names.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  yangtools generate -o ./ids model.yaml\n")
		Writef(fs.Output(), "  yangtools generate -o ./ids --package interfaces model.yaml\n")
		Writef(fs.Output(), "  yangtools generate -o ./ids --skip-obsolete model.yaml\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one schema file path")
	}
	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	schemaPath := fs.Arg(0)

	startTime := time.Now()
	mod, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	g := generator.New()
	if flags.Package != "" {
		g.PackageName = flags.Package
	}
	g.SkipObsolete = flags.SkipObsolete
	g.EmitFeatures = !flags.NoFeatures
	g.EmitIdentities = !flags.NoIdentities

	result, err := g.Generate(mod)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		Writef(os.Stderr, "YANG Code Generator\n")
		Writef(os.Stderr, "===================\n\n")
		Writef(os.Stderr, "yangtools version: %s\n", yangtools.Version())
		Writef(os.Stderr, "Schema: %s (module %s)\n", schemaPath, result.ModuleName)
		Writef(os.Stderr, "Package: %s\n", result.PackageName)
		Writef(os.Stderr, "Features: %d\n", result.FeatureCount)
		Writef(os.Stderr, "Identities: %d\n", result.IdentityCount)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	for _, f := range result.Files {
		fmt.Printf("wrote %s/%s\n", flags.Output, f.Name)
	}

	return nil
}
