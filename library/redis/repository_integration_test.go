//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/marcelsud/booklend/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()
	addr, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	t.Run("empty list", func(t *testing.T) {
		repo := CreateTestRepository(t, addr)
		defer repo.Close(ctx)

		members, err := repo.SelectAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("round trip keeps order and commas", func(t *testing.T) {
		repo := CreateTestRepository(t, addr)
		require.NoError(t, repo.Insert(ctx, library.NewMember(1, "Ada")))
		require.NoError(t, repo.Insert(ctx, library.NewMember(7, "Smith, Jr.")))
		require.NoError(t, repo.Close(ctx))

		reopened := CreateTestRepository(t, addr)
		defer reopened.Close(ctx)

		members, err := reopened.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []library.Member{
			library.NewMember(1, "Ada"),
			library.NewMember(7, "Smith, Jr."),
		}, members)
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		pushRaw(t, addr, "garbage")

		repo := CreateTestRepository(t, addr)
		defer repo.Close(ctx)

		members, err := repo.SelectAll(ctx)
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})
}
