// Package transport turns queued operations into HTTP requests and maps the
// JSON responses back onto their return placeholders. Authorization is the
// http.Client's concern; the SDK installs a bearer-token transport wrapper.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/corridorhq/corridor-go/internal/faults"
	"github.com/corridorhq/corridor-go/runtime"
)

// Service executes individual operations against the REST endpoint.
type Service struct {
	http    *http.Client
	baseURL string
}

// New constructs a Service. baseURL carries no trailing slash.
func New(httpClient *http.Client, baseURL string) *Service {
	return &Service{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Do executes one operation synchronously: build the request, send it,
// classify failures, and map the response payload onto op.Return.
func (s *Service) Do(ctx context.Context, op *runtime.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	method, url := s.route(op)

	var body io.Reader
	hasBody := op.Kind == runtime.OpCreate || op.Kind == runtime.OpUpdate || op.Kind == runtime.OpInvoke
	if hasBody {
		data, err := EncodePayload(op.Parameters, op.ParameterName)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return faults.FromNetwork(describe(op), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		return faults.FromStatus(resp.StatusCode, string(snippet), describe(op))
	}
	if op.Return == nil || resp.StatusCode == http.StatusNoContent {
		// Drain the discarded body so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// Non-JSON payloads land raw under the reserved value key.
	contentType := strings.ToLower(strings.SplitN(resp.Header.Get("Content-Type"), ";", 2)[0])
	if contentType != "" && contentType != "application/json" {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return faults.FromNetwork(describe(op), err)
		}
		op.Return.SetProperty(runtime.ValueKey, raw)
		return nil
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty body with a success status
		}
		return faults.FromNetwork(describe(op), err)
	}
	mapPayload(op.Return, decoded)
	return nil
}

// route picks the HTTP verb and URL for one operation kind.
func (s *Service) route(op *runtime.Operation) (string, string) {
	url := s.baseURL + "/" + op.Address()
	switch op.Kind {
	case runtime.OpCreate:
		return http.MethodPost, url
	case runtime.OpUpdate:
		return http.MethodPatch, url
	case runtime.OpDelete:
		return http.MethodDelete, url
	case runtime.OpInvoke:
		return http.MethodPost, url + "/" + op.Name
	default:
		return http.MethodGet, url
	}
}

func describe(op *runtime.Operation) string {
	if op.Kind == runtime.OpInvoke {
		return op.Kind.String() + " " + op.Address() + "/" + op.Name
	}
	return op.Kind.String() + " " + op.Address()
}

// mapPayload feeds raw name/value pairs from a decoded response into sink.
// Collection pages arrive as {"value": [...]} with items delivered under
// positional keys and the cursor under NextKey; annotation keys ("@...")
// are dropped; a bare scalar lands under ValueKey.
func mapPayload(sink runtime.PropertySink, decoded any) {
	obj, ok := decoded.(map[string]any)
	if !ok {
		sink.SetProperty(runtime.ValueKey, decoded)
		return
	}

	if wrapped, present := obj["value"]; present {
		switch v := wrapped.(type) {
		case []any:
			for i, item := range v {
				sink.SetProperty(strconv.Itoa(i), item)
			}
			if next := nextLink(obj); next != "" {
				sink.SetProperty(runtime.NextKey, next)
			}
		default:
			sink.SetProperty(runtime.ValueKey, v)
		}
		return
	}

	for k, v := range obj {
		if strings.HasPrefix(k, "@") {
			continue
		}
		sink.SetProperty(k, v)
	}
}

func nextLink(obj map[string]any) string {
	for _, key := range []string{"@nextLink", "@odata.nextLink"} {
		if next, ok := obj[key].(string); ok {
			return next
		}
	}
	return ""
}
