package config

import (
	"time"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap/zapcore"
)

// redacted replaces every generic rendering of Mappings.
const redacted = "env vars"

// Mappings is the runtime-facing mapping configuration, with every
// size in bytes and every timeout a time.Duration. It is built once
// from a MappingEnv at startup and shared read-only afterwards.
type Mappings struct {
	// EntityCacheSize is the entity cache budget in bytes.
	EntityCacheSize uint64
	MaxAPIVersion   *semver.Version
	// MappingHandlerTimeout is nil when no per-handler limit is set.
	MappingHandlerTimeout *time.Duration
	RuntimeMaxStackSize   uint64
	QueryCacheBlocks      uint64
	// QueryCacheMaxMemory is the query cache budget in bytes.
	QueryCacheMaxMemory   uint64
	QueryCacheStalePeriod uint64

	MaxFetchCacheFileSize uint64
	MaxFetchCacheSize     uint64
	FetchTimeout          time.Duration
	MaxFetchMapFileSize   uint64
	// MaxFetchFileBytes is nil when no ceiling applies.
	MaxFetchFileBytes          *uint64
	AllowNonDeterministicFetch bool
}

// Derive maps the raw environment values into runtime units:
// kilobytes and megabytes become bytes, second counts become
// durations, everything else passes through. It is pure and total;
// a MappingEnv that loaded always derives.
func (e *MappingEnv) Derive() *Mappings {
	m := &Mappings{
		EntityCacheSize:            uint64(e.EntityCacheSizeKB) * 1000,
		MaxAPIVersion:              e.MaxAPIVersion.Get(),
		RuntimeMaxStackSize:        uint64(e.RuntimeMaxStackSize.Get()),
		QueryCacheBlocks:           uint64(e.QueryCacheBlocks),
		QueryCacheMaxMemory:        uint64(e.QueryCacheMaxMemMB) * 1000 * 1000,
		QueryCacheStalePeriod:      uint64(e.QueryCacheStalePeriod),
		MaxFetchCacheFileSize:      uint64(e.MaxFetchCacheFileSize.Get()),
		MaxFetchCacheSize:          uint64(e.MaxFetchCacheSize),
		FetchTimeout:               time.Duration(e.FetchTimeoutSecs) * time.Second,
		MaxFetchMapFileSize:        uint64(e.MaxFetchMapFileSize.Get()),
		AllowNonDeterministicFetch: bool(e.AllowNonDeterministicFetch),
	}
	if secs, ok := e.MappingHandlerTimeoutSecs.Get(); ok {
		d := time.Duration(secs) * time.Second
		m.MappingHandlerTimeout = &d
	}
	if b, ok := e.MaxFetchFileBytes.Get(); ok {
		v := uint64(b)
		m.MaxFetchFileBytes = &v
	}
	return m
}

// String implements fmt.Stringer without disclosing any field value;
// the environment may hold sensitive material in principle, and the
// blanket placeholder means a future field cannot leak by accident.
func (Mappings) String() string { return redacted }

// GoString implements fmt.GoStringer so %#v stays redacted too.
func (Mappings) GoString() string { return redacted }

// MarshalLogObject implements zapcore.ObjectMarshaler; zap encodes
// the placeholder instead of reflecting over the fields.
func (Mappings) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("config", redacted)
	return nil
}
