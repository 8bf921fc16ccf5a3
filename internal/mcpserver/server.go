// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes yangtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openmgmt/yangtools"
)

const serverInstructions = `yangtools MCP server — validates YANG-modeled instance data and inspects compiled schema modules.

Configuration: All defaults are configurable via YANGTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- YANGTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for schema files
- YANGTOOLS_CACHE_ENABLED (default: true) — disable schema caching entirely
- YANGTOOLS_ISSUE_LIMIT (default: 100) — default result limit for validation issues
- YANGTOOLS_VALIDATE_MODE — default validation mode (config, edit, get, rpc, ...)
- YANGTOOLS_VALIDATE_NO_WARNINGS (default: false) — suppress warnings by default
- YANGTOOLS_VALIDATE_CHECK_OBSOLETE (default: false) — enable the obsolete-status policy by default

Caching: Compiled schema modules are cached per session. File entries use path+mtime as key (auto-invalidated on change). Instance documents are never cached. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		moduleCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "yangtools", Version: yangtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a YAML instance document against a compiled YANG schema module. Returns errors and warnings with instance paths. Modes select which operation's rules apply: config, edit, get, get-config, rpc, rpc-reply, notification, notification-filter. For noisy trees, use no_warnings to focus on errors first. Use offset/limit to paginate through results. Mode, obsolete checking, and warning suppression defaults are configurable via YANGTOOLS_VALIDATE_* env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Compile a YAML schema document into a module and return a structural summary: module name, namespace, prefix, yang-version, feature states, identities, and top-level data nodes.",
	}, handleParse)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
