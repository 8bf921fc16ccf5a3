package main

import (
	"fmt"
	"os"

	"github.com/openmgmt/yangtools"
	"github.com/openmgmt/yangtools/cmd/yangtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("yangtools v%s\n", yangtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		exitOnError(commands.HandleValidate(os.Args[2:]))
	case "parse":
		exitOnError(commands.HandleParse(os.Args[2:]))
	case "generate":
		exitOnError(commands.HandleGenerate(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand can offer.
var knownCommands = []string{"validate", "parse", "generate", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`yangtools - YANG Instance Data Tools

Usage:
  yangtools <command> [options]

Commands:
  validate    Validate a YAML instance document against a schema module
  parse       Compile and display a schema module
  generate    Generate Go constants from a schema module
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  yangtools validate -schema model.yaml config.yaml
  yangtools validate -schema model.yaml -mode config -check-obsolete config.yaml
  yangtools parse --format json model.yaml
  yangtools generate -o ./ids model.yaml
  yangtools mcp

Run 'yangtools <command> --help' for more information on a command.`)
}
