package repository_test

import (
	"context"
	"testing"

	"motionklub/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*repository.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisSessionStore(client), mr
}

func TestRedisSessionStore(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "c1", "motion_guest_session")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Put(ctx, "c1", "motion_guest_session", []byte(`{"bnr":"1"}`)))
	require.NoError(t, store.Put(ctx, "c1", "motion_guest_session", []byte(`{"bnr":"2"}`)))
	got, err := store.Get(ctx, "c1", "motion_guest_session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"bnr":"2"}`, string(got))
	assert.Equal(t, `{"bnr":"2"}`, mr.HGet("motionklub:session:c1", "motion_guest_session"))

	_, err = store.Get(ctx, "c1", "motion_animator_session")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Get(ctx, "c2", "motion_guest_session")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Put(ctx, "c1", "motion_animator_session", []byte(`{"animator_id":"anim001"}`)))
	require.NoError(t, store.Delete(ctx, "c1"))
	_, err = store.Get(ctx, "c1", "motion_animator_session")
	require.NoError(t, err, "deleting no keys is a no-op")

	require.NoError(t, store.Delete(ctx, "c1", "motion_guest_session", "motion_animator_session"))
	_, err = store.Get(ctx, "c1", "motion_guest_session")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Get(ctx, "c1", "motion_animator_session")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, mr.Exists("motionklub:session:c1"))
}

func TestRedisSessionStore_ServerDown(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "c1", "motion_guest_session")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
