package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kelseyhightower/envconfig"
)

// MissingVariableError reports a required environment variable that
// was absent with no default declared.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("environment variable %s is required but was not set", e.Name)
}

// InvalidFormatError reports a variable whose value was present but
// failed its declared parser.
type InvalidFormatError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("environment variable %s has invalid value %q: %v", e.Name, e.Value, e.Err)
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }

// envconfig reports missing required keys as an untyped error; the
// message has been stable across v1.
var requiredKeyPattern = regexp.MustCompile(`^required key (\S+) missing value$`)

// translateEnvError converts envconfig's native errors into this
// package's taxonomy. Errors it does not recognize pass through
// unchanged.
func translateEnvError(err error) error {
	var pe *envconfig.ParseError
	if errors.As(err, &pe) {
		return &InvalidFormatError{Name: pe.KeyName, Value: pe.Value, Err: pe.Err}
	}
	if m := requiredKeyPattern.FindStringSubmatch(err.Error()); m != nil {
		return &MissingVariableError{Name: m[1]}
	}
	return err
}
