package config

import (
	"errors"
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredSpec exercises the missing-variable arm of the taxonomy;
// the mapping table itself declares no required field.
type requiredSpec struct {
	AccessToken Uint `envconfig:"ACCESS_TOKEN" required:"true"`
}

func TestTranslateMissingRequired(t *testing.T) {
	// envconfig falls back to the unprefixed name on lookup and uses
	// it when reporting a missing required key.
	require.NoError(t, os.Unsetenv("INDEX_ACCESS_TOKEN"))
	require.NoError(t, os.Unsetenv("ACCESS_TOKEN"))

	var spec requiredSpec
	err := envconfig.Process(Prefix, &spec)
	require.Error(t, err)

	translated := translateEnvError(err)
	var missing *MissingVariableError
	require.ErrorAs(t, translated, &missing)
	assert.Equal(t, "ACCESS_TOKEN", missing.Name)
	assert.Contains(t, missing.Error(), "ACCESS_TOKEN")
}

func TestTranslateParseError(t *testing.T) {
	require.NoError(t, os.Setenv("INDEX_ACCESS_TOKEN", "not-a-number"))
	defer os.Unsetenv("INDEX_ACCESS_TOKEN")

	var spec requiredSpec
	err := envconfig.Process(Prefix, &spec)
	require.Error(t, err)

	translated := translateEnvError(err)
	var invalid *InvalidFormatError
	require.ErrorAs(t, translated, &invalid)
	assert.Equal(t, "INDEX_ACCESS_TOKEN", invalid.Name)
	assert.Equal(t, "not-a-number", invalid.Value)
	assert.Error(t, invalid.Err)
	assert.ErrorIs(t, translated, invalid.Err)
}

func TestTranslatePassesThroughUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	assert.Same(t, cause, translateEnvError(cause))
}

func TestErrorMessages(t *testing.T) {
	missing := &MissingVariableError{Name: "INDEX_FOO"}
	assert.Equal(t, "environment variable INDEX_FOO is required but was not set", missing.Error())

	cause := errors.New("bad digit")
	invalid := &InvalidFormatError{Name: "INDEX_BAR", Value: "x1", Err: cause}
	assert.Equal(t, `environment variable INDEX_BAR has invalid value "x1": bad digit`, invalid.Error())
	assert.Same(t, cause, invalid.Unwrap())
}
