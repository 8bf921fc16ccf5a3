package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool_Summary(t *testing.T) {
	moduleCache.reset()
	input := parseInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
	}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "interfaces", output.Module)
	assert.Equal(t, "urn:example:interfaces", output.Namespace)
	assert.Equal(t, "if", output.Prefix)
	assert.Equal(t, "1.1", output.YangVersion)
	assert.Equal(t, []string{"interfaces"}, output.TopLevel)
	// container + list + 7 leafs/leaf-lists
	assert.Equal(t, 9, output.NodeCount)

	require.Len(t, output.Features, 2)
	assert.Equal(t, parseFeature{Name: "legacy", Enabled: false}, output.Features[0])
	assert.Equal(t, parseFeature{Name: "tunnels", Enabled: true}, output.Features[1])

	require.Len(t, output.Identities, 4)
	assert.Equal(t, parseIdentity{Name: "ethernet", Base: "interface-type"}, output.Identities[0])
	assert.Equal(t, parseIdentity{Name: "interface-type"}, output.Identities[1])
	assert.Equal(t, parseIdentity{Name: "slip", Base: "interface-type", Status: "obsolete"}, output.Identities[2])
	assert.Equal(t, parseIdentity{Name: "tunnel", Base: "interface-type"}, output.Identities[3])
}

func TestParseTool_InlineContent(t *testing.T) {
	moduleCache.reset()
	input := parseInput{
		Schema: docInput{Content: schemaContent},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "m", output.Module)
	assert.Equal(t, 1, output.NodeCount)
	assert.Empty(t, output.Features)
	assert.Empty(t, output.Identities)
}

func TestParseTool_BadInput(t *testing.T) {
	input := parseInput{}
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestParseTool_InvalidSchema(t *testing.T) {
	input := parseInput{
		Schema: docInput{Content: "namespace: urn:x\n"},
	}
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
