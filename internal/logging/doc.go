// Package logging builds the zap logger used by the node binaries.
//
// Production output is JSON on stdout with ISO-8601 timestamps;
// development output is colored console with stacktraces enabled.
package logging
