package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	s := NewRedisStoreWithClient(client)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestRedisStoreLoadMissingReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSaveData(), data)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	saved := DefaultSaveData()
	saved.Stats.Coins = 21
	saved.Stats.HP = 64
	saved.Gifts = append(saved.Gifts, Gift{ID: "g-7", Name: "Woven Collar", Desc: "a bit frayed", From: "Tama", Time: 17})
	saved.GivenNPCIDs["npc-tama"] = true
	require.NoError(t, s.Save(ctx, saved))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 21, loaded.Stats.Coins)
	assert.Equal(t, 64, loaded.Stats.HP)
	require.Len(t, loaded.Gifts, 1)
	assert.Equal(t, "Woven Collar", loaded.Gifts[0].Name)
	assert.True(t, loaded.GivenNPCIDs["npc-tama"])
}

func TestRedisStoreToleratesCorruptBlob(t *testing.T) {
	ctx := context.Background()
	mini := miniredis.RunT(t)
	mini.Set(DefaultSaveKey, `{"gifts":"not-an-array","stats":{"hp":"soup"}}`)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	s := NewRedisStoreWithClient(client)
	defer s.Close()

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Gifts)
	assert.Equal(t, DefaultHP, loaded.Stats.HP)
}

func TestRedisStoreHelpFlagAndClear(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	seen, err := s.LoadHelpSeen(ctx)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.SaveHelpSeen(ctx, true))
	seen, err = s.LoadHelpSeen(ctx)
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, s.Clear(ctx))
	seen, err = s.LoadHelpSeen(ctx)
	require.NoError(t, err)
	assert.False(t, seen)
}
