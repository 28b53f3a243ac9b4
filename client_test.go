package corridor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestNew_PanicsOnMissingArgs(t *testing.T) {
	t.Parallel()
	assertPanics(t, func() { New("", "key") })
	assertPanics(t, func() { New("http://example.com", "") })
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

func TestClient_ExecutePopulatesEntity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header: %q", got)
		}
		if r.Method != http.MethodGet || r.URL.Path != "/servicePrincipals/sp1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"appDisplayName": "Corridor Portal",
			"accountEnabled": true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	defer func() { _ = c.Close() }()

	sp := c.ServicePrincipals().ByID("sp1")
	sp.Load()
	if err := c.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if sp.AppDisplayName() != "Corridor Portal" || !sp.AccountEnabled() {
		t.Fatalf("entity not populated: %q enabled=%v", sp.AppDisplayName(), sp.AccountEnabled())
	}
}

func TestClient_ExecuteRunsOperationsInOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"secretText": "s3cr3t", "keyId": "k1"})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	defer func() { _ = c.Close() }()

	sp := c.ServicePrincipals().ByID("sp1")
	sp.Load()
	ret := sp.AddPassword("rotation 2026")
	sp.RemovePassword("old")

	if err := c.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{
		"GET /servicePrincipals/sp1",
		"POST /servicePrincipals/sp1/addPassword",
		"POST /servicePrincipals/sp1/removePassword",
	}
	if len(seen) != len(want) {
		t.Fatalf("requests: %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d: got %q want %q", i, seen[i], want[i])
		}
	}
	if !ret.Populated() {
		t.Fatal("invoke result must be populated after execute")
	}
}

func TestClient_ExecuteEmptyQueueMakesNoRequests(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	defer func() { _ = c.Close() }()

	if err := c.Execute(context.Background()); err != nil {
		t.Fatalf("empty execute: %v", err)
	}
}

func TestClient_CloseIsIdempotentAndStopsFlushes(t *testing.T) {
	t.Parallel()

	c := New("http://example.invalid", "test-key")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	sp := c.ServicePrincipals().ByID("sp1")
	sp.Load()
	if err := c.Execute(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestClient_NavigationRootsShareQueryContext(t *testing.T) {
	t.Parallel()

	c := New("http://example.invalid", "test-key", WithExecutor(noopExecutor{}))
	defer func() { _ = c.Close() }()

	if got := c.Tasks().Path().Address(); got != "me/todo/tasks" {
		t.Fatalf("tasks address: %q", got)
	}
	if got := c.OnlineMeetings().Path().Address(); got != "me/onlineMeetings" {
		t.Fatalf("meetings address: %q", got)
	}
	if got := c.ChangeLog().Path().Address(); got != "changeLog" {
		t.Fatalf("change log address: %q", got)
	}

	c.AuditLogs().DirectoryAudits().Load()
	c.Security().Alerts().Load()
	if got := len(c.Pending()); got != 2 {
		t.Fatalf("pending: %d", got)
	}
}

type noopExecutor struct{}

func (noopExecutor) Execute(context.Context, []*Operation) error { return nil }
