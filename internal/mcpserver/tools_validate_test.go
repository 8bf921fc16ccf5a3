package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dupInstanceContent = `interfaces:
  interface:
    - name: eth0
      type: ethernet
    - name: eth0
      type: ethernet
`

func TestValidateTool_ValidData(t *testing.T) {
	moduleCache.reset()
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{File: "../../testdata/interfaces-config.yaml"},
	}
	result, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Errors)
	assert.Equal(t, "default", output.Mode)
	assert.Positive(t, output.NodeCount)
}

func TestValidateTool_DuplicateKeys(t *testing.T) {
	moduleCache.reset()
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{Content: dupInstanceContent},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.NotEmpty(t, output.Errors)
	assert.Equal(t, output.ErrorCount, len(output.Errors))
	assert.Contains(t, output.Errors[0].Path, "eth0")
}

func TestValidateTool_TrustedSkipsStructural(t *testing.T) {
	moduleCache.reset()
	input := validateInput{
		Schema:  docInput{File: "../../testdata/interfaces.yaml"},
		Data:    docInput{Content: dupInstanceContent},
		Trusted: true,
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
}

func TestValidateTool_ConfigModeRejectsStateData(t *testing.T) {
	moduleCache.reset()
	content := `interfaces:
  interface:
    - name: eth0
      type: ethernet
      oper-status: up
`
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{Content: content},
		Mode:   "config",
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, "config", output.Mode)
	require.NotEmpty(t, output.Errors)
	assert.Equal(t, "oper-status", output.Errors[0].Node)
}

func TestValidateTool_CheckObsolete(t *testing.T) {
	moduleCache.reset()
	content := `interfaces:
  interface:
    - name: sl0
      type: slip
`
	schema := docInput{File: "../../testdata/interfaces.yaml"}
	data := docInput{Content: content}

	// Off by default: the obsolete identity reference passes.
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Schema: schema,
		Data:   data,
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)

	on := true
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Schema:        schema,
		Data:          data,
		CheckObsolete: &on,
	})
	require.NoError(t, err)
	assert.False(t, output.Valid)
}

func TestValidateTool_NoWarnings(t *testing.T) {
	moduleCache.reset()
	schemaDoc := `module: m
namespace: urn:m
prefix: m
data:
  - name: host
    kind: leaf
    status: deprecated
    type: {name: string, kind: string}
`
	data := docInput{Content: "host: a\n"}
	on := true

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Schema:        docInput{Content: schemaDoc},
		Data:          data,
		CheckObsolete: &on,
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, 1, output.WarningCount)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0].Message, "deprecated")

	suppress := true
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Schema:        docInput{Content: schemaDoc},
		Data:          data,
		CheckObsolete: &on,
		NoWarnings:    &suppress,
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Zero(t, output.WarningCount)
	assert.Empty(t, output.Warnings)
}

func TestValidateTool_Pagination(t *testing.T) {
	moduleCache.reset()
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{Content: dupInstanceContent},
		Limit:  1,
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Len(t, output.Errors, 1)
	assert.Equal(t, 1, output.Returned)
	assert.Greater(t, output.ErrorCount, 1)
}

func TestValidateTool_InvalidMode(t *testing.T) {
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{Content: "interfaces: {}\n"},
		Mode:   "typo",
	}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateTool_SchemaError(t *testing.T) {
	input := validateInput{
		Schema: docInput{Content: "data: []\n"},
		Data:   docInput{Content: "x: 1\n"},
	}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateTool_DataError(t *testing.T) {
	moduleCache.reset()
	input := validateInput{
		Schema: docInput{File: "../../testdata/interfaces.yaml"},
		Data:   docInput{Content: "no-such-node: 1\n"},
	}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{arg: "", want: "default"},
		{arg: "default", want: "default"},
		{arg: "config", want: "config"},
		{arg: "edit", want: "edit"},
		{arg: "get", want: "get"},
		{arg: "get-config", want: "get-config"},
		{arg: "rpc", want: "rpc"},
		{arg: "rpc-reply", want: "rpc-reply"},
		{arg: "notification", want: "notification"},
		{arg: "notification-filter", want: "notification-filter"},
	}
	for _, tt := range tests {
		m, err := parseMode(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, m.String())
	}

	_, err := parseMode("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}
