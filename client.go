// Package corridor is the Go SDK for the Corridor directory and
// collaboration service. Resource objects are constructed locally against a
// shared query context; reads and writes queue on that context and run when
// Execute flushes the queue.
package corridor

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/corridorhq/corridor-go/changes"
	"github.com/corridorhq/corridor-go/communications"
	"github.com/corridorhq/corridor-go/directory"
	"github.com/corridorhq/corridor-go/internal/dispatch"
	"github.com/corridorhq/corridor-go/internal/transport"
	"github.com/corridorhq/corridor-go/runtime"
	"github.com/corridorhq/corridor-go/todo"
)

type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string // bearer token added to every request

	query *runtime.QueryContext
	exec  runtime.Executor
	disp  *dispatch.Dispatcher // owned only when the SDK built it

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client bound to baseURL and authenticating with apiKey.
// Additional options can be provided via functional arguments.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		query:   runtime.NewQueryContext(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header.
	c.wrapTransportWithAPIKey()

	if c.exec == nil {
		cfg, err := dispatch.LoadConfig()
		if err != nil {
			panic(err)
		}
		c.disp = dispatch.NewDispatcher(cfg)
		c.exec = newDispatchExecutor(c.disp, transport.New(c.http, c.baseURL))
	}

	return c
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to automatically
// add the Authorization header to all requests using the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to automatically add the
// Authorization header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// Query exposes the client's query context for resource objects built
// outside the navigation roots below.
func (c *Client) Query() *runtime.QueryContext { return c.query }

// Pending returns the operations queued since the last Execute, in order.
func (c *Client) Pending() []*runtime.Operation { return c.query.Pending() }

// Execute flushes the queued operations. Operations run in enqueue order and
// their return placeholders are populated before Execute returns. The queue
// is cleared whether or not the flush succeeds.
func (c *Client) Execute(ctx context.Context) error {
	return c.query.Flush(ctx, c.exec)
}

// Close stops the background dispatcher (if the SDK owns one). Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.disp != nil {
		c.disp.Stop()
	}
	return nil
}

// --------------------------------------------------------------------
// Navigation roots. Pure navigation: nothing is queued until the caller
// loads or mutates something.
// --------------------------------------------------------------------

// ServicePrincipals addresses the tenant's service principals.
func (c *Client) ServicePrincipals() *directory.ServicePrincipalCollection {
	return directory.NewServicePrincipalCollection(c.query, runtime.NewPath("servicePrincipals", nil))
}

// AuditLogs addresses the audit root with its directoryAudits and signIns
// collections.
func (c *Client) AuditLogs() *directory.AuditLog {
	return directory.NewAuditLog(c.query, runtime.NewPath("auditLogs", nil))
}

// Security addresses the security root with its alerts and incidents.
func (c *Client) Security() *directory.Security {
	return directory.NewSecurity(c.query, runtime.NewPath("security", nil))
}

// Tasks addresses the signed-in user's to-do tasks.
func (c *Client) Tasks() *todo.TaskCollection {
	path := runtime.NewPath("me", nil).Child("todo").Child("tasks")
	return todo.NewTaskCollection(c.query, path)
}

// OnlineMeetings addresses the signed-in user's online meetings.
func (c *Client) OnlineMeetings() *communications.OnlineMeetingCollection {
	path := runtime.NewPath("me", nil).Child("onlineMeetings")
	return communications.NewOnlineMeetingCollection(c.query, path)
}

// ChangeLog addresses the tenant change log. Items materialize as the
// concrete change type matching each record.
func (c *Client) ChangeLog() *changes.Collection {
	return changes.NewCollection(c.query, runtime.NewPath("changeLog", nil))
}
