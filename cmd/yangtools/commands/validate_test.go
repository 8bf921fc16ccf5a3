package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Schema, "expected Schema to be empty by default")
		assert.Empty(t, flags.Mode, "expected Mode to be empty by default")
		assert.False(t, flags.Trusted, "expected Trusted to be false by default")
		assert.False(t, flags.CheckObsolete, "expected CheckObsolete to be false by default")
		assert.False(t, flags.NoWarnings, "expected NoWarnings to be false by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--schema", "model.yaml", "--mode", "config", "--check-obsolete", "--no-warnings", "-q", "--format", "json", "config.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "model.yaml", flags.Schema)
		assert.Equal(t, "config", flags.Mode)
		assert.True(t, flags.CheckObsolete, "expected CheckObsolete to be true")
		assert.True(t, flags.NoWarnings, "expected NoWarnings to be true")
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "config.yaml", fs.Arg(0))
	})

	t.Run("trusted flag", func(t *testing.T) {
		fs2, flags2 := SetupValidateFlags()
		require.NoError(t, fs2.Parse([]string{"--schema", "model.yaml", "--trusted", "config.yaml"}))
		assert.True(t, flags2.Trusted)
	})
}

func TestHandleValidate_NoArgs(t *testing.T) {
	err := HandleValidate([]string{})
	assert.Error(t, err)
}

func TestHandleValidate_Help(t *testing.T) {
	err := HandleValidate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleValidate_MissingSchema(t *testing.T) {
	err := HandleValidate([]string{"config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema document is required")
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	err := HandleValidate([]string{"--schema", "model.yaml", "--format", "invalid", "config.yaml"})
	assert.Error(t, err)
}

func TestHandleValidate_InvalidMode(t *testing.T) {
	err := HandleValidate([]string{"--schema", "model.yaml", "--mode", "typo", "config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestHandleValidate_SchemaNotFound(t *testing.T) {
	err := HandleValidate([]string{"--schema", "/nonexistent/model.yaml", "config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading schema")
}

func TestHandleValidate_ValidData(t *testing.T) {
	err := HandleValidate([]string{
		"-q",
		"--schema", "../../../testdata/interfaces.yaml",
		"../../../testdata/interfaces-config.yaml",
	})
	assert.NoError(t, err)
}

func TestHandleValidate_DataNotFound(t *testing.T) {
	err := HandleValidate([]string{
		"--schema", "../../../testdata/interfaces.yaml",
		"/nonexistent/config.yaml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading data")
}
