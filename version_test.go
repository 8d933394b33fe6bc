package chaos_test

import (
	"regexp"
	"testing"

	"github.com/adipat/chaos"
	"github.com/stretchr/testify/assert"
)

// TestLibraryVersion verifies the accessor returns the semantic version
// constant.
func TestLibraryVersion(t *testing.T) {
	assert.Equal(t, chaos.Version, chaos.LibraryVersion())
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d+\.\d+$`), chaos.Version)
}
