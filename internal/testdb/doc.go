// Package testdb provides helpers for PostgreSQL integration tests. Tests are
// skipped unless a database URL is present in the environment, and each test
// runs inside a transaction that is rolled back afterwards.
package testdb
