package rdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts, err := Options("localhost:6379", "")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Empty(t, opts.Password)

	opts, err = Options("redis://:secret@cache:6380/2", "")
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = Options("redis://cache:6380/0", "override")
	require.NoError(t, err)
	assert.Equal(t, "override", opts.Password)

	_, err = Options("redis://cache:6380/notadb", "")
	assert.Error(t, err)
}
