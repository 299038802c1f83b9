package resolve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/config"
	"github.com/spec-kit/support-portal/internal/hubspot"
)

func testClient(t *testing.T, handler http.Handler) *hubspot.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return hubspot.NewClient(config.HubSpotConfig{
		BaseURL:        srv.URL,
		Token:          "test-token",
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestStaticResolverKnownOwner(t *testing.T) {
	r := NewStaticResolver(map[string]string{"12345": "María Pérez"})
	require.Equal(t, "María Pérez", r.DisplayName(context.Background(), "12345"))
}

func TestStaticResolverUnknownOwnerShowsRawID(t *testing.T) {
	r := NewStaticResolver(nil)
	require.Equal(t, "Agente 98765", r.DisplayName(context.Background(), "98765"))
}

func TestLiveResolverFullName(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/crm/v3/owners/42", req.URL.Path)
		require.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "42", "firstName": "Ana", "lastName": "Rojas", "email": "ana@example.com",
		})
	}))

	r := NewLiveResolver(client, nil, NewStaticResolver(nil), zap.NewNop())
	require.Equal(t, "Ana Rojas", r.DisplayName(context.Background(), "42"))
}

func TestLiveResolverEmailFallback(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "42", "email": "ana@example.com"})
	}))

	r := NewLiveResolver(client, nil, NewStaticResolver(nil), zap.NewNop())
	require.Equal(t, "ana@example.com", r.DisplayName(context.Background(), "42"))
}

func TestLiveResolverEmptyRecordIsUnassigned(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "42"})
	}))

	r := NewLiveResolver(client, nil, NewStaticResolver(nil), zap.NewNop())
	require.Equal(t, Unassigned, r.DisplayName(context.Background(), "42"))
}

func TestLiveResolverForbiddenFallsBackToStaticTable(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "missing scope"})
	}))

	static := NewStaticResolver(map[string]string{"42": "Mesa de Ayuda"})
	r := NewLiveResolver(client, nil, static, zap.NewNop())
	require.Equal(t, "Mesa de Ayuda", r.DisplayName(context.Background(), "42"))

	// An id the static table does not know degrades to the raw-id form.
	require.Equal(t, "Agente 7", r.DisplayName(context.Background(), "7"))
}

type fakeCache struct {
	entries map[string]string
	sets    int
}

func (f *fakeCache) Get(_ context.Context, id string) (string, bool) {
	name, ok := f.entries[id]
	return name, ok
}

func (f *fakeCache) Set(_ context.Context, id, name string) {
	f.entries[id] = name
	f.sets++
}

func TestLiveResolverUsesCache(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "42", "firstName": "Ana", "lastName": "Rojas"})
	}))

	cache := &fakeCache{entries: map[string]string{}}
	r := NewLiveResolver(client, cache, NewStaticResolver(nil), zap.NewNop())

	require.Equal(t, "Ana Rojas", r.DisplayName(context.Background(), "42"))
	require.Equal(t, "Ana Rojas", r.DisplayName(context.Background(), "42"))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, cache.sets)
}
