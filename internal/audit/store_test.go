package audit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.log")
	store, err := NewStore(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestAppendAndListMostRecentFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(Entry{Timestamp: base, Action: ActionCreateTicket, TicketID: "1"}))
	require.NoError(t, store.Append(Entry{Timestamp: base.Add(time.Minute), Action: ActionCheckStatus, TicketID: "2"}))
	require.NoError(t, store.Append(Entry{Timestamp: base.Add(2 * time.Minute), Action: ActionCheckStatus, TicketID: "3"}))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "3", entries[0].TicketID)
	require.Equal(t, "2", entries[1].TicketID)
	require.Equal(t, "1", entries[2].TicketID)
}

func TestListSkipsCorruptLines(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(Entry{Action: ActionCreateTicket, TicketID: "1"}))

	// Simulate a partially-written line from a crashed process.
	file, err := os.OpenFile(store.path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = file.WriteString("{\"action\":\"CREATE_TI\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.NoError(t, store.Append(Entry{Action: ActionCheckStatus, TicketID: "2"}))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "2", entries[0].TicketID)
	require.Equal(t, "1", entries[1].TicketID)
}

func TestListMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.Remove(store.path))

	entries, err := store.List()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAppendFillsTimestamp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(Entry{Action: ActionCreateTicket, TicketID: "1"}))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].Timestamp.IsZero())
}

func TestConcurrentAppends(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(Entry{Action: ActionCheckStatus, TicketID: "x"})
		}()
	}
	wg.Wait()

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 20)
}
