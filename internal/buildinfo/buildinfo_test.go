package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())

	Commit = "abc123"
	assert.Equal(t, "abc123", Short())

	Version = "v1.2.0"
	assert.Equal(t, "v1.2.0", Short())
	assert.Contains(t, String(), "commit abc123")
}
