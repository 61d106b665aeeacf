package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvParkyTestDBURL, "")
	t.Setenv(EnvParkyDatabaseURL, "")
	assert.Empty(t, GetTestDatabaseURL())

	t.Setenv(EnvParkyDatabaseURL, "postgres://fallback")
	assert.Equal(t, "postgres://fallback", GetTestDatabaseURL())

	t.Setenv(EnvParkyTestDBURL, "postgres://test")
	assert.Equal(t, "postgres://test", GetTestDatabaseURL())

	t.Setenv(EnvDatabaseURL, "postgres://primary")
	assert.Equal(t, "postgres://primary", GetTestDatabaseURL())
}
