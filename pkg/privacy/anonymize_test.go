package privacy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeUserID(t *testing.T) {
	handle := AnonymizeUserID(123456789)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), handle)
	// Stable across calls, distinct across users.
	assert.Equal(t, handle, AnonymizeUserID(123456789))
	assert.NotEqual(t, handle, AnonymizeUserID(123456790))
	// The raw ID must not leak through.
	assert.NotContains(t, handle, "123456789")
}

func TestUserAttr(t *testing.T) {
	attr := UserAttr(42)
	assert.Equal(t, "user", attr.Key)
	assert.Equal(t, AnonymizeUserID(42), attr.Value.String())
}
