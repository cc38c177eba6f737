// Package main is the bootstrap entry point for the indexing node.
//
// It materializes the mapping-runtime configuration before any other
// subsystem starts: an optional .env file is loaded into the process
// environment, the INDEX_* variables are parsed and defaulted, and
// the derived configuration is handed to the consuming systems. A
// missing or malformed variable aborts startup with a non-zero exit;
// misconfiguration is an operator-visible condition, never retried.
//
// Usage:
//
//	# Production mode
//	./indexnode
//
//	# Development mode with a local environment file
//	./indexnode -dev -env-file .env -log-level debug
package main
