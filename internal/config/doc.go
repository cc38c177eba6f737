// Package config materializes the mapping-runtime configuration from
// process environment variables.
//
// Loading is two-stage. Load parses every variable into a MappingEnv,
// which records exactly what the environment declared, still in the
// units the variables are documented in (kilobytes, megabytes,
// seconds). Derive then produces the Mappings object the rest of the
// node consumes, with every size in bytes and every timeout a
// time.Duration. Keeping the stages separate keeps the unit math pure
// and testable apart from the failure-prone textual parsing.
//
// Every variable is namespaced under the INDEX_ prefix:
//   - INDEX_ENTITY_CACHE_SIZE (KB, default 10000)
//   - INDEX_MAX_API_VERSION (default 0.0.7)
//   - INDEX_MAPPING_HANDLER_TIMEOUT (seconds, no default)
//   - INDEX_RUNTIME_MAX_STACK_SIZE (bytes, default 512 KiB)
//   - INDEX_QUERY_CACHE_BLOCKS (default 2)
//   - INDEX_QUERY_CACHE_MAX_MEM (MB, default 1000)
//   - INDEX_QUERY_CACHE_STALE_PERIOD (default 100)
//   - INDEX_MAX_FETCH_CACHE_FILE_SIZE (bytes, default 1 MiB)
//   - INDEX_MAX_FETCH_CACHE_SIZE (default 50)
//   - INDEX_FETCH_TIMEOUT (seconds, default 30)
//   - INDEX_MAX_FETCH_MAP_FILE_SIZE (bytes, default 256 MiB)
//   - INDEX_MAX_FETCH_FILE_BYTES (bytes, no default)
//   - INDEX_ALLOW_NON_DETERMINISTIC_FETCH (default false)
//
// Failures are typed: MissingVariableError for a required variable
// that was absent, InvalidFormatError for a value that failed its
// parser. Either aborts the whole load; no partially populated
// configuration escapes.
//
// Example Usage:
//
//	env, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mappings := env.Derive()
package config
