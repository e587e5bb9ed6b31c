package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMd5ThenHex(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Md5ThenHex(nil))
}

func TestHashUUID(t *testing.T) {
	a, err := HashUUID("site-a")
	require.NoError(t, err)
	b, err := HashUUID("site-a")
	require.NoError(t, err)
	c, err := HashUUID("site-b")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, uuid.Version(3), a.Version())
	assert.Equal(t, uuid.RFC4122, a.Variant())

	_, err = HashUUID(func() {})
	assert.Error(t, err)
}

func TestParseOrHashUUID(t *testing.T) {
	const text = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	u, err := ParseOrHashUUID(text)
	require.NoError(t, err)
	assert.Equal(t, text, u.String())

	named, err := ParseOrHashUUID("radiology")
	require.NoError(t, err)
	hashed, _ := HashUUID("radiology")
	assert.Equal(t, hashed, named)
}
