package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openmgmt/yangtools/parser"
	"github.com/openmgmt/yangtools/unres"
	"github.com/openmgmt/yangtools/validator"
)

type validateInput struct {
	Schema        docInput `json:"schema"                   jsonschema:"The schema document describing the module"`
	Data          docInput `json:"data"                     jsonschema:"The instance document to validate"`
	Mode          string   `json:"mode,omitempty"           jsonschema:"Validation mode: default, config, edit, get, get-config, rpc, rpc-reply, notification, or notification-filter"`
	Trusted       bool     `json:"trusted,omitempty"        jsonschema:"Skip structural checks for data from a trusted source"`
	CheckObsolete *bool    `json:"check_obsolete,omitempty" jsonschema:"Report use of obsolete definitions as errors"`
	NoWarnings    *bool    `json:"no_warnings,omitempty"    jsonschema:"Suppress warnings from output"`
	Offset        int      `json:"offset,omitempty"         jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit         int      `json:"limit,omitempty"          jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	Node       string `json:"node,omitempty"`
	SchemaPath string `json:"schema_path,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Related    string `json:"related,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Mode         string          `json:"mode"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	NodeCount    int             `json:"node_count"`
	Deferred     int             `json:"deferred"`
	Returned     int             `json:"returned"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

// parseMode maps a mode argument to its validator constant.
func parseMode(s string) (validator.Mode, error) {
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
		return validator.ModeDefault, fmt.Errorf("invalid mode %q; valid modes: default, config, edit, get, get-config, rpc, rpc-reply, notification, notification-filter", s)
	}
}

func toIssues(src []validator.ValidationError) []validateIssue {
	out := makeSlice[validateIssue](len(src))
	for _, i := range src {
		out = append(out, validateIssue{
			Path:       i.Path,
			Message:    i.Message,
			Node:       i.Node,
			SchemaPath: i.SchemaPath,
			Constraint: i.Constraint,
			Related:    i.Related,
		})
	}
	return out
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil or empty).
	modeArg := input.Mode
	if modeArg == "" {
		modeArg = cfg.ValidateMode
	}
	checkObsolete := cfg.ValidateCheckObsolete
	if input.CheckObsolete != nil {
		checkObsolete = *input.CheckObsolete
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	mode, err := parseMode(modeArg)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	mod, err := input.Schema.resolveModule()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	if err := input.Data.check(); err != nil {
		return errResult(err), validateOutput{}, nil
	}
	root, err := parser.ParseData(mod, input.Data.parseOptions()...)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	queue := &unres.Queue{}
	result, err := validator.ValidateTree(root,
		validator.WithMode(mode),
		validator.WithTrusted(input.Trusted),
		validator.WithObsoleteCheck(checkObsolete),
		validator.WithQueue(queue),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		Mode:       mode.String(),
		ErrorCount: result.ErrorCount,
		NodeCount:  result.NodeCount,
		Deferred:   result.Deferred,
	}

	output.Errors = toIssues(result.Errors)
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = toIssues(result.Warnings)
	}

	// Paginate errors and warnings independently.
	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	if !noWarnings {
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}
