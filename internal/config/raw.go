package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every variable this package reads: the field
// tagged ENTITY_CACHE_SIZE is looked up as INDEX_ENTITY_CACHE_SIZE.
const Prefix = "INDEX"

// Compile-time defaults for the WithDefault fields.
type (
	stackSizeDefault      struct{}
	fetchCacheFileDefault struct{}
	fetchMapFileDefault   struct{}
)

func (stackSizeDefault) defaultValue() NoUnderscores { return 512 * 1024 }
func (fetchCacheFileDefault) defaultValue() Uint     { return 1024 * 1024 }
func (fetchMapFileDefault) defaultValue() Uint       { return 256 * 1024 * 1024 }

// MappingEnv is the raw mapping-runtime configuration: each field
// holds exactly what its environment variable declared, still in the
// unit the variable is documented in. Derive turns it into the
// runtime-facing Mappings.
type MappingEnv struct {
	// Size limit of the entity cache, in kilobytes.
	EntityCacheSizeKB Uint `envconfig:"ENTITY_CACHE_SIZE" default:"10000"`
	// Highest mapping API version the runtime will accept.
	MaxAPIVersion Version `envconfig:"MAX_API_VERSION" default:"0.0.7"`
	// Per-handler execution timeout in seconds. Unset means no limit.
	MappingHandlerTimeoutSecs Optional[Uint] `envconfig:"MAPPING_HANDLER_TIMEOUT"`
	// Maximum stack size for the sandboxed runtime, in bytes.
	RuntimeMaxStackSize WithDefault[NoUnderscores, stackSizeDefault] `envconfig:"RUNTIME_MAX_STACK_SIZE"`
	// Blocks kept per network in the query cache. Lookups are O(n)
	// on this value, so it should stay small. 0 disables the cache.
	QueryCacheBlocks Uint `envconfig:"QUERY_CACHE_BLOCKS" default:"2"`
	// Total memory budget for the query cache, in megabytes.
	QueryCacheMaxMemMB    NoUnderscores `envconfig:"QUERY_CACHE_MAX_MEM" default:"1000"`
	QueryCacheStalePeriod Uint          `envconfig:"QUERY_CACHE_STALE_PERIOD" default:"100"`

	// Remote-content fetcher.
	MaxFetchCacheFileSize WithDefault[Uint, fetchCacheFileDefault] `envconfig:"MAX_FETCH_CACHE_FILE_SIZE"`
	MaxFetchCacheSize     Uint                                     `envconfig:"MAX_FETCH_CACHE_SIZE" default:"50"`
	// Timeout applied to every fetch request, in seconds.
	FetchTimeoutSecs    Uint                                   `envconfig:"FETCH_TIMEOUT" default:"30"`
	MaxFetchMapFileSize WithDefault[Uint, fetchMapFileDefault] `envconfig:"MAX_FETCH_MAP_FILE_SIZE"`
	// Hard ceiling on any single fetched file. Unset means no ceiling.
	MaxFetchFileBytes          Optional[Uint] `envconfig:"MAX_FETCH_FILE_BYTES"`
	AllowNonDeterministicFetch Flag           `envconfig:"ALLOW_NON_DETERMINISTIC_FETCH" default:"false"`
}

// Load reads the process environment into a MappingEnv. It returns
// either a fully populated struct or the first typed failure; no
// partially initialized value escapes. Loading is deterministic for
// a given environment, including which failure surfaces first.
func Load() (*MappingEnv, error) {
	var env MappingEnv
	if err := envconfig.Process(Prefix, &env); err != nil {
		return nil, translateEnvError(err)
	}
	return &env, nil
}
