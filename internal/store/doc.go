// Package store defines the persistence interfaces for parks, trails and users,
// together with the sentinel errors every implementation returns. Handlers depend
// on these interfaces only; the PostgreSQL and in-memory implementations live
// under internal/platform.
package store
