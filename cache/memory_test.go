package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	kv := NewMemory()

	_, err := kv.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set("stats", `{"7":{"goals":2}}`))
	val, err := kv.Get("stats")
	require.NoError(t, err)
	assert.Equal(t, `{"7":{"goals":2}}`, val)

	require.NoError(t, kv.Delete("stats"))
	_, err = kv.Get("stats")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
