package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemorySessionStore_CreateAndGet(t *testing.T) {
	store := newMemorySessionStore(30 * time.Minute)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.Token)

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, "admin", fetched.Username)
}

func TestMemorySessionStore_TokensAreUnique(t *testing.T) {
	store := newMemorySessionStore(30 * time.Minute)

	first, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)
	second, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestMemorySessionStore_ExpiredSessionIsGone(t *testing.T) {
	store := newMemorySessionStore(-time.Second)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestMemorySessionStore_GetExtendsExpiry(t *testing.T) {
	store := newMemorySessionStore(30 * time.Minute)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.True(t, !fetched.ExpiresAt.Before(created.ExpiresAt))
}

func TestMemorySessionStore_Destroy(t *testing.T) {
	store := newMemorySessionStore(30 * time.Minute)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	assert.NoError(t, store.Destroy(context.Background(), created.Token))

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }
func (f *fakeCache) Close() error                 { return nil }

func TestCacheSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore(newFakeCache(), 30*time.Minute)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, created.Token, fetched.Token)
	assert.Equal(t, "admin", fetched.Username)
}

func TestCacheSessionStore_UnknownTokenIsNil(t *testing.T) {
	store := NewSessionStore(newFakeCache(), 30*time.Minute)

	fetched, err := store.Get(context.Background(), "no-such-token")
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestCacheSessionStore_Destroy(t *testing.T) {
	store := NewSessionStore(newFakeCache(), 30*time.Minute)

	created, err := store.Create(context.Background(), "admin")
	assert.NoError(t, err)

	assert.NoError(t, store.Destroy(context.Background(), created.Token))

	fetched, err := store.Get(context.Background(), created.Token)
	assert.NoError(t, err)
	assert.Nil(t, fetched)
}
