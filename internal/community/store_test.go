package community

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/breakloop/community-backend/pkg/kv"
	"github.com/breakloop/community-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorageKey = "community_state_v2"

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestStore(t *testing.T, durable kv.Store, ephemeral bool) *Store {
	t.Helper()
	store, err := NewStore(StoreParams{
		Logger:    testLogger(),
		Durable:   durable,
		Key:       testStorageKey,
		Ephemeral: ephemeral,
	})
	require.NoError(t, err)
	return store
}

func TestNewStoreValidatesDependencies(t *testing.T) {
	_, err := NewStore(StoreParams{Durable: kv.NewMemory(), Key: testStorageKey})
	assert.Error(t, err)

	_, err = NewStore(StoreParams{Logger: testLogger(), Key: testStorageKey})
	assert.Error(t, err)

	_, err = NewStore(StoreParams{Logger: testLogger(), Durable: kv.NewMemory()})
	assert.Error(t, err)

	// Ephemeral stores do not need a backend.
	_, err = NewStore(StoreParams{Logger: testLogger(), Key: testStorageKey, Ephemeral: true})
	assert.NoError(t, err)
}

func TestLoadSeedsDefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	durable := kv.NewMemory()
	store := newTestStore(t, durable, false)

	snapshot, err := store.Load(ctx, Patch{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshot(), snapshot)

	// Seeding writes through so the next boot sees the same state.
	raw, err := durable.Get(ctx, testStorageKey)
	require.NoError(t, err)
	var stored Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, snapshot, stored)
}

func TestLoadPrefersStoredSnapshot(t *testing.T) {
	ctx := context.Background()
	durable := kv.NewMemory()

	first := newTestStore(t, durable, false)
	_, err := first.Load(ctx, Patch{})
	require.NoError(t, err)
	saved, err := first.Persist(ctx, Patch{
		IncomingRequests:   []JoinRequest{{ID: "req-1", ActivityID: "event-1", RequesterID: "user-1"}},
		PendingRequests:    []JoinRequest{{ID: "req-1", ActivityID: "event-1", RequesterID: "user-1"}},
		UpcomingActivities: []Activity{},
	})
	require.NoError(t, err)

	second := newTestStore(t, durable, false)
	loaded, err := second.Load(ctx, Patch{})
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.Empty(t, loaded.UpcomingActivities)
	require.Len(t, loaded.IncomingRequests, 1)
}

func TestLoadFallsBackOnUnreadablePayload(t *testing.T) {
	ctx := context.Background()
	durable := kv.NewMemory()
	require.NoError(t, durable.Set(ctx, testStorageKey, "{not json"))

	store := newTestStore(t, durable, false)
	snapshot, err := store.Load(ctx, Patch{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshot(), snapshot)

	// The broken payload was overwritten with the defaults.
	raw, err := durable.Get(ctx, testStorageKey)
	require.NoError(t, err)
	var stored Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, snapshot, stored)
}

func TestLoadAppliesSeedOverDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory(), false)

	seed := Patch{PublicEvents: []Activity{{ID: "pe-custom", Title: "Custom Event"}}}
	snapshot, err := store.Load(ctx, seed)
	require.NoError(t, err)

	require.Len(t, snapshot.PublicEvents, 1)
	assert.Equal(t, "pe-custom", snapshot.PublicEvents[0].ID)
	// Untouched lists keep the defaults.
	assert.Equal(t, DefaultSnapshot().FriendSharedActivities, snapshot.FriendSharedActivities)
}

func TestEphemeralStoreNeverTouchesDurable(t *testing.T) {
	ctx := context.Background()
	durable := kv.NewMemory()
	require.NoError(t, durable.Set(ctx, testStorageKey, `{"upcomingActivities":[]}`))
	store := newTestStore(t, durable, true)

	snapshot, err := store.Load(ctx, Patch{})
	require.NoError(t, err)
	// The stored payload is ignored: defaults win in ephemeral mode.
	assert.Equal(t, DefaultSnapshot(), snapshot)

	_, err = store.Persist(ctx, Patch{UpcomingActivities: []Activity{{ID: "ua-x"}}})
	require.NoError(t, err)

	raw, err := durable.Get(ctx, testStorageKey)
	require.NoError(t, err)
	assert.Equal(t, `{"upcomingActivities":[]}`, raw)
	assert.Equal(t, 1, durable.Len())
}

func TestPersistMergesOverCache(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory(), false)
	_, err := store.Load(ctx, Patch{})
	require.NoError(t, err)

	current := Activity{ID: "curr-1", Title: "Focus Walk"}
	merged, err := store.Persist(ctx, Patch{CurrentActivity: &current, CurrentActivitySet: true})
	require.NoError(t, err)

	require.NotNil(t, merged.CurrentActivity)
	assert.Equal(t, "curr-1", merged.CurrentActivity.ID)
	// Lists the patch did not touch are unchanged.
	assert.Equal(t, DefaultSnapshot().PublicEvents, merged.PublicEvents)

	cleared, err := store.Persist(ctx, Patch{CurrentActivitySet: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.CurrentActivity)
}

func TestPersistedSnapshotRoundTripsEmptyLists(t *testing.T) {
	ctx := context.Background()
	durable := kv.NewMemory()
	store := newTestStore(t, durable, false)
	_, err := store.Load(ctx, Patch{})
	require.NoError(t, err)

	// Empty the public events, then reload: the empty list must survive
	// instead of the defaults coming back.
	_, err = store.Persist(ctx, Patch{PublicEvents: []Activity{}})
	require.NoError(t, err)

	reloaded := newTestStore(t, durable, false)
	snapshot, err := reloaded.Load(ctx, Patch{})
	require.NoError(t, err)
	assert.Empty(t, snapshot.PublicEvents)
	assert.NotNil(t, snapshot.PublicEvents)
}

func TestCurrentReturnsDetachedCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory(), false)
	_, err := store.Load(ctx, Patch{})
	require.NoError(t, err)

	first := store.Current()
	first.PublicEvents[0].Title = "mutated"

	second := store.Current()
	assert.NotEqual(t, "mutated", second.PublicEvents[0].Title)
}
