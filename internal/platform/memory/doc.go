// Package memory provides process-local implementations of the store
// interfaces. They back the server's --in-memory mode and the router tests,
// and enforce the same uniqueness, reference and cascade rules as the
// PostgreSQL schema.
package memory
