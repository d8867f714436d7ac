package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	repo := NewStoreRepo()

	data, err := repo.Get(context.Background(), "sess:x:cart")

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSetOverwrites(t *testing.T) {
	repo := NewStoreRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("first")))
	require.NoError(t, repo.Set(ctx, "k", []byte("second")))

	data, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewStoreRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("abc")))

	data, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	data[0] = 'z'

	again, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
