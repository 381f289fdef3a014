package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobKey(t *testing.T) {
	key := BlobKey(123456, "jpg")

	assert.Regexp(t,
		regexp.MustCompile(`^temp/123456/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`),
		key)

	// Keys are unique per call even for the same user and extension.
	assert.NotEqual(t, key, BlobKey(123456, "jpg"))
}
