package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// scalar is implemented by value types that know how to parse
// themselves from the textual form of an environment variable.
type scalar[T any] interface {
	parse(string) (T, error)
}

// Uint is a non-negative base-10 integer.
type Uint uint64

func (Uint) parse(s string) (Uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Uint(v), nil
}

// Decode implements envconfig.Decoder.
func (u *Uint) Decode(value string) error {
	v, err := u.parse(value)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

var errUnderscore = errors.New(`integer literal must not contain "_" separators`)

// NoUnderscores is a Uint whose textual form must not use the "_"
// grouping separator. "1_000" and "1000" mean different things to
// different tools; refusing the separator keeps the value unambiguous.
type NoUnderscores uint64

func (NoUnderscores) parse(s string) (NoUnderscores, error) {
	if strings.ContainsRune(s, '_') {
		return 0, errUnderscore
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return NoUnderscores(v), nil
}

// Decode implements envconfig.Decoder.
func (n *NoUnderscores) Decode(value string) error {
	v, err := n.parse(value)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Flag is a boolean restricted to the closed, case-insensitive token
// set "true", "false", "1" and "0". Any other text is a parse error;
// there is no looser truthy coercion.
type Flag bool

// Decode implements envconfig.Decoder.
func (f *Flag) Decode(value string) error {
	switch strings.ToLower(value) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("unrecognized boolean token %q", value)
	}
	return nil
}

// Version is a strict major.minor.patch semantic version. Partial
// forms such as "1.2" and prefixed forms such as "v1.2.3" are
// rejected.
type Version struct {
	v *semver.Version
}

// Decode implements envconfig.Decoder.
func (v *Version) Decode(value string) error {
	parsed, err := semver.StrictNewVersion(value)
	if err != nil {
		return err
	}
	v.v = parsed
	return nil
}

// Get returns the parsed version, or nil if none was decoded.
func (v Version) Get() *semver.Version { return v.v }

// defaulter supplies the compile-time default constant for a
// WithDefault field. Implementations are zero-size marker types.
type defaulter[T any] interface {
	defaultValue() T
}

// WithDefault decodes through the inner scalar T, substituting D's
// constant when the variable is unset or set to the empty string.
// The zero value already reads as the constant, so a field the
// loader never touched is well-defined.
type WithDefault[T scalar[T], D defaulter[T]] struct {
	value T
	set   bool
}

// Decode implements envconfig.Decoder.
func (w *WithDefault[T, D]) Decode(value string) error {
	if value == "" {
		var d D
		w.value = d.defaultValue()
		w.set = true
		return nil
	}
	var z T
	v, err := z.parse(value)
	if err != nil {
		return err
	}
	w.value = v
	w.set = true
	return nil
}

// Get returns the decoded value, or the compile-time default when
// the variable was never decoded.
func (w WithDefault[T, D]) Get() T {
	if !w.set {
		var d D
		return d.defaultValue()
	}
	return w.value
}

// Optional wraps a scalar whose variable may be legitimately absent.
// The zero value is the absent sentinel; no default applies.
type Optional[T scalar[T]] struct {
	value T
	ok    bool
}

// Decode implements envconfig.Decoder.
func (o *Optional[T]) Decode(value string) error {
	var z T
	v, err := z.parse(value)
	if err != nil {
		return err
	}
	o.value = v
	o.ok = true
	return nil
}

// Get returns the decoded value and whether the variable was present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }
