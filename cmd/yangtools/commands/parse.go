package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/openmgmt/yangtools"
	"github.com/openmgmt/yangtools/schema"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Quiet  bool
	Format string
}

// ModuleSummary is the structured output of the parse command.
type ModuleSummary struct {
	Module      string            `json:"module"                yaml:"module"`
	Namespace   string            `json:"namespace"             yaml:"namespace"`
	Prefix      string            `json:"prefix"                yaml:"prefix"`
	YangVersion string            `json:"yang_version"          yaml:"yang_version"`
	NodeCount   int               `json:"node_count"            yaml:"node_count"`
	TopLevel    []string          `json:"top_level,omitempty"   yaml:"top_level,omitempty"`
	Features    []FeatureSummary  `json:"features,omitempty"    yaml:"features,omitempty"`
	Identities  []IdentitySummary `json:"identities,omitempty"  yaml:"identities,omitempty"`
}

// FeatureSummary is one feature definition and its current state.
type FeatureSummary struct {
	Name    string `json:"name"    yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// IdentitySummary is one identity definition.
type IdentitySummary struct {
	Name   string `json:"name"             yaml:"name"`
	Base   string `json:"base,omitempty"   yaml:"base,omitempty"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the module summary, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the module summary, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yangtools parse [flags] <model.yaml|->\n\n")
		Writef(fs.Output(), "Compile a schema document and display the module structure.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  yangtools parse model.yaml\n")
		Writef(fs.Output(), "  yangtools parse --format json model.yaml | jq '.node_count'\n")
		Writef(fs.Output(), "  cat model.yaml | yangtools parse -\n")
	}

	return fs, flags
}

// SummarizeModule builds a ModuleSummary from a compiled module. Features
// and identities are sorted by name for stable output.
func SummarizeModule(mod *schema.Module) ModuleSummary {
	summary := ModuleSummary{
		Module:      mod.Name,
		Namespace:   mod.Namespace,
		Prefix:      mod.Prefix,
		YangVersion: mod.Version.String(),
	}

	for _, n := range mod.Data {
		summary.TopLevel = append(summary.TopLevel, n.Name)
		summary.NodeCount += countNodes(n)
	}

	for _, f := range mod.Features {
		summary.Features = append(summary.Features, FeatureSummary{Name: f.Name, Enabled: f.State()})
	}
	sort.Slice(summary.Features, func(i, j int) bool {
		return summary.Features[i].Name < summary.Features[j].Name
	})

	for _, id := range mod.Identities {
		out := IdentitySummary{Name: id.Name}
		if id.Base != nil {
			out.Base = id.Base.Name
		}
		if id.Status != schema.StatusCurrent {
			out.Status = id.Status.String()
		}
		summary.Identities = append(summary.Identities, out)
	}
	sort.Slice(summary.Identities, func(i, j int) bool {
		return summary.Identities[i].Name < summary.Identities[j].Name
	})

	return summary
}

func countNodes(n *schema.Node) int {
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	schemaPath := fs.Arg(0)
	mod, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	summary := SummarizeModule(mod)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(summary, flags.Format)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "YANG Schema Parser\n")
		Writef(os.Stderr, "==================\n\n")
		Writef(os.Stderr, "yangtools version: %s\n", yangtools.Version())
		Writef(os.Stderr, "Schema: %s\n\n", schemaPath)
	}

	fmt.Printf("Module: %s\n", summary.Module)
	fmt.Printf("Namespace: %s\n", summary.Namespace)
	fmt.Printf("Prefix: %s\n", summary.Prefix)
	fmt.Printf("YANG Version: %s\n", summary.YangVersion)
	fmt.Printf("Data Nodes: %d\n", summary.NodeCount)

	if len(summary.TopLevel) > 0 {
		fmt.Printf("\nTop-level nodes:\n")
		for _, name := range summary.TopLevel {
			fmt.Printf("  %s\n", name)
		}
	}
	if len(summary.Features) > 0 {
		fmt.Printf("\nFeatures:\n")
		for _, f := range summary.Features {
			state := "disabled"
			if f.Enabled {
				state = "enabled"
			}
			fmt.Printf("  %s (%s)\n", f.Name, state)
		}
	}
	if len(summary.Identities) > 0 {
		fmt.Printf("\nIdentities:\n")
		for _, id := range summary.Identities {
			line := "  " + id.Name
			if id.Base != "" {
				line += " -> " + id.Base
			}
			if id.Status != "" {
				line += " [" + id.Status + "]"
			}
			fmt.Println(line)
		}
	}

	return nil
}
