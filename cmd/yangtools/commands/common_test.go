package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmgmt/yangtools/validator"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestOutputStructured_RejectsText(t *testing.T) {
	err := OutputStructured(map[string]string{"a": "b"}, FormatText)
	assert.Error(t, err)
}

func TestParseValidationMode(t *testing.T) {
	tests := []struct {
		arg  string
		want validator.Mode
	}{
		{arg: "", want: validator.ModeDefault},
		{arg: "default", want: validator.ModeDefault},
		{arg: "config", want: validator.ModeConfig},
		{arg: "edit", want: validator.ModeEdit},
		{arg: "get", want: validator.ModeGet},
		{arg: "get-config", want: validator.ModeGetConfig},
		{arg: "rpc", want: validator.ModeRPC},
		{arg: "rpc-reply", want: validator.ModeRPCReply},
		{arg: "notification", want: validator.ModeNotification},
		{arg: "notification-filter", want: validator.ModeNotifFilter},
	}
	for _, tt := range tests {
		got, err := ParseValidationMode(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseValidationMode("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestLoadSchema(t *testing.T) {
	mod, err := LoadSchema("../../../testdata/interfaces.yaml")
	require.NoError(t, err)
	assert.Equal(t, "interfaces", mod.Name)

	_, err = LoadSchema("/nonexistent/model.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading schema")
}
