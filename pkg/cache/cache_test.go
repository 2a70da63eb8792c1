package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type cachedProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestRedisStore_SetAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := cache.NewRedisStore(client)
	ctx := context.Background()

	value := cachedProduct{ID: "p-1", Name: "Leather Boots"}
	mock.ExpectSet("product:p-1", []byte(`{"id":"p-1","name":"Leather Boots"}`), time.Hour).SetVal("OK")
	store.Set(ctx, "product:p-1", value, time.Hour)

	mock.ExpectGet("product:p-1").SetVal(`{"id":"p-1","name":"Leather Boots"}`)
	var got cachedProduct
	hit := store.Get(ctx, "product:p-1", &got)
	assert.True(t, hit)
	assert.Equal(t, value, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := cache.NewRedisStore(client)

	mock.ExpectGet("product:absent").RedisNil()
	var got cachedProduct
	assert.False(t, store.Get(context.Background(), "product:absent", &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_ErrorsDegradeToMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := cache.NewRedisStore(client)
	ctx := context.Background()

	// A backend failure must read as a miss, never an error.
	mock.ExpectGet("product:p-1").SetErr(errors.New("connection refused"))
	var got cachedProduct
	assert.False(t, store.Get(ctx, "product:p-1", &got))

	// Corrupt entries count as a miss too.
	mock.ExpectGet("product:p-2").SetVal("{not json")
	assert.False(t, store.Get(ctx, "product:p-2", &got))

	// Set and Delete failures are swallowed.
	mock.ExpectSet("product:p-1", []byte(`{"id":"","name":""}`), time.Minute).SetErr(errors.New("oom"))
	store.Set(ctx, "product:p-1", cachedProduct{}, time.Minute)

	mock.ExpectDel("product:p-1").SetErr(errors.New("gone"))
	store.Delete(ctx, "product:p-1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Clear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := cache.NewRedisStore(client)

	mock.ExpectFlushAll().SetVal("OK")
	store.Clear(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStore_TTL(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "k", cachedProduct{ID: "1"}, 10*time.Millisecond)
	var got cachedProduct
	assert.True(t, store.Get(ctx, "k", &got))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.Get(ctx, "k", &got))
}

func TestMemoryStore_DeleteAndClear(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "a", cachedProduct{ID: "a"}, time.Hour)
	store.Set(ctx, "b", cachedProduct{ID: "b"}, time.Hour)

	store.Delete(ctx, "a")
	var got cachedProduct
	assert.False(t, store.Get(ctx, "a", &got))
	assert.True(t, store.Get(ctx, "b", &got))

	store.Clear(ctx)
	assert.False(t, store.Get(ctx, "b", &got))
}
