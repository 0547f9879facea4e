package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/itinerary-studio/internal/types"
)

func docFor(client string) *types.ItineraryDocument {
	return &types.ItineraryDocument{
		Metadata: types.TripMetadata{ClientName: client},
		Segments: []types.ItinerarySegment{{DayIndex: 0, Title: "Día 1"}},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := New(time.Hour)
	store.Put("session-1", docFor("Ana"))

	got, err := store.Get("session-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Metadata.ClientName)
	assert.Len(t, got.Segments, 1)
}

func TestStore_UnknownSessionIsNotFound(t *testing.T) {
	store := New(time.Hour)

	_, err := store.Get("missing")
	var notFound *ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.SessionID)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := New(time.Hour)
	store.Put("session-1", docFor("Ana"))
	store.Put("session-1", docFor("Luis"))

	got, err := store.Get("session-1")
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.Metadata.ClientName)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := New(time.Hour)
	store.Put("session-a", docFor("Ana"))
	store.Put("session-b", docFor("Luis"))

	a, err := store.Get("session-a")
	require.NoError(t, err)
	b, err := store.Get("session-b")
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Metadata.ClientName)
	assert.Equal(t, "Luis", b.Metadata.ClientName)
}

func TestStore_Evict(t *testing.T) {
	store := New(time.Hour)
	store.Put("session-1", docFor("Ana"))
	store.Evict("session-1")

	_, err := store.Get("session-1")
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_RecordsExpire(t *testing.T) {
	store := New(20 * time.Millisecond)
	store.Put("session-1", docFor("Ana"))

	time.Sleep(40 * time.Millisecond)

	_, err := store.Get("session-1")
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_ConcurrentSessions(t *testing.T) {
	store := New(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			client := fmt.Sprintf("cliente-%d", i)
			store.Put(id, docFor(client))
			got, err := store.Get(id)
			assert.NoError(t, err)
			assert.Equal(t, client, got.Metadata.ClientName)
		}(i)
	}
	wg.Wait()
}
