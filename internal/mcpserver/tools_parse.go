package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openmgmt/yangtools/schema"
)

type parseInput struct {
	Schema docInput `json:"schema" jsonschema:"The schema document to compile"`
}

type parseFeature struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type parseIdentity struct {
	Name   string `json:"name"`
	Base   string `json:"base,omitempty"`
	Status string `json:"status,omitempty"`
}

type parseOutput struct {
	Module      string          `json:"module"`
	Namespace   string          `json:"namespace"`
	Prefix      string          `json:"prefix"`
	YangVersion string          `json:"yang_version"`
	NodeCount   int             `json:"node_count"`
	TopLevel    []string        `json:"top_level,omitempty"`
	Features    []parseFeature  `json:"features,omitempty"`
	Identities  []parseIdentity `json:"identities,omitempty"`
}

// countSchemaNodes counts every definition in the subtree rooted at n,
// including choice, case, and uses nodes.
func countSchemaNodes(n *schema.Node) int {
	count := 1
	for _, c := range n.Children {
		count += countSchemaNodes(c)
	}
	return count
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	mod, err := input.Schema.resolveModule()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Module:      mod.Name,
		Namespace:   mod.Namespace,
		Prefix:      mod.Prefix,
		YangVersion: mod.Version.String(),
	}

	output.TopLevel = makeSlice[string](len(mod.Data))
	for _, n := range mod.Data {
		output.TopLevel = append(output.TopLevel, n.Name)
		output.NodeCount += countSchemaNodes(n)
	}

	output.Features = makeSlice[parseFeature](len(mod.Features))
	for _, f := range mod.Features {
		output.Features = append(output.Features, parseFeature{Name: f.Name, Enabled: f.State()})
	}
	sort.Slice(output.Features, func(i, j int) bool {
		return output.Features[i].Name < output.Features[j].Name
	})

	output.Identities = makeSlice[parseIdentity](len(mod.Identities))
	for _, id := range mod.Identities {
		out := parseIdentity{Name: id.Name}
		if id.Base != nil {
			out.Base = id.Base.Name
		}
		if id.Status != schema.StatusCurrent {
			out.Status = id.Status.String()
		}
		output.Identities = append(output.Identities, out)
	}
	sort.Slice(output.Identities, func(i, j int) bool {
		return output.Identities[i].Name < output.Identities[j].Name
	})

	return nil, output, nil
}
