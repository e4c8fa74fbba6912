package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/rocketscienceinc/connectn/internal/game"
	"github.com/rocketscienceinc/connectn/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T, id string) *entity.Match {
	t.Helper()

	g, err := game.New(3, 3, 3)
	require.NoError(t, err)

	return entity.NewMatch(id, "tic-tac-toe", g)
}

func TestMatchRepository_Create(t *testing.T) {
	t.Run("Create_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a new match
		match := newMatch(t, "123")

		// When: Create is called
		err := st.Storage.Create(ctx, match)

		// Then: the match can be read back
		require.NoError(t, err)

		stored, err := st.Storage.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Same(t, match, stored)
	})

	t.Run("Create_Duplicate", func(t *testing.T) {
		ctx, st := suite.New(t)

		require.NoError(t, st.Storage.Create(ctx, newMatch(t, "123")))

		// When: the same ID is created twice
		err := st.Storage.Create(ctx, newMatch(t, "123"))

		// Then: ErrMatchAlreadyExists is returned
		require.ErrorIs(t, err, apperror.ErrMatchAlreadyExists)
	})
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: GetByID is called with a non-existent ID
		match, err := st.Storage.GetByID(ctx, "9999999")

		// Then: ErrMatchNotFound is returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, match)
	})

	t.Run("GetByID_CanceledContext", func(t *testing.T) {
		_, st := suite.New(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := st.Storage.GetByID(ctx, "123")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a stored match
		require.NoError(t, st.Storage.Create(ctx, newMatch(t, "123")))

		// When: DeleteByID is called with its ID
		err := st.Storage.DeleteByID(ctx, "123")

		// Then: it is gone
		require.NoError(t, err)

		_, err = st.Storage.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := st.Storage.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})
}

func TestMatchRepository_List(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: matches created at different times
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		match := newMatch(t, id)
		match.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, st.Storage.Create(ctx, match))
	}

	// When: listing them
	matches, err := st.Storage.List(ctx)
	require.NoError(t, err)

	// Then: oldest comes first
	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestMatchRepository_Concurrent(t *testing.T) {
	ctx, st := suite.New(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id := fmt.Sprintf("match-%d", i)
			assert.NoError(t, st.Storage.Create(ctx, newMatch(t, id)))
			_, err := st.Storage.GetByID(ctx, id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	matches, err := st.Storage.List(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 50)
}
