package guildconfig

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := New(db)
	require.NoError(t, err)
	return store
}

func TestUnconfiguredGuildHasNoChannels(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.DecreeChannel(100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPilloryChannelRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetPilloryChannel(100, 555))

	id, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(555), id)
}

func TestChannelsDoNotClobberEachOther(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetPilloryChannel(100, 555))
	require.NoError(t, store.SetDecreeChannel(100, 777))

	pillory, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(555), pillory)

	decree, ok, err := store.DecreeChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(777), decree)
}

func TestSettingOneChannelLeavesTheOtherUnset(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetDecreeChannel(100, 777))

	_, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLastWriteWins(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetPilloryChannel(100, 555))
	require.NoError(t, store.SetPilloryChannel(100, 556))

	id, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(556), id)
}

func TestGuildsAreIsolated(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetPilloryChannel(100, 555))
	require.NoError(t, store.SetPilloryChannel(200, 666))

	id, ok, err := store.PilloryChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(555), id)

	id, ok, err = store.PilloryChannel(200)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(666), id)
}
