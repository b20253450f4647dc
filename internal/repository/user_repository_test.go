package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice", "wonder")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	t.Run("duplicate username fails and keeps the original row", func(t *testing.T) {
		_, err := repo.Create(ctx, "alice", "other")
		require.ErrorIs(t, err, ErrDuplicateKey)

		existing, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, existing)
		assert.Equal(t, user.ID, existing.ID)
		assert.Equal(t, "wonder", existing.Password)
	})
}

func TestUserRepositoryAuthenticate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "bob", "builder")
	require.NoError(t, err)

	t.Run("matching credentials", func(t *testing.T) {
		user, err := repo.Authenticate(ctx, "bob", "builder")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		wrongPass, err := repo.Authenticate(ctx, "bob", "nope")
		require.NoError(t, err)
		unknown, err2 := repo.Authenticate(ctx, "nobody", "builder")
		require.NoError(t, err2)
		assert.Nil(t, wrongPass)
		assert.Nil(t, unknown)
	})
}

func TestUserRepositoryGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "default", "password")
	require.NoError(t, err)
	assert.Equal(t, "password", first.Password)

	again, err := repo.GetOrCreate(ctx, "default", "ignored")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "password", again.Password)
}

func TestUserRepositoryFindByUsernameAbsent(t *testing.T) {
	db := newTestDB(t)

	user, err := NewUserRepository(db).FindByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}
