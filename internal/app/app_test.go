package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/docuvault/docstore-mcp-server/internal/mcp"
	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

func TestToolboxCatalogOrder(t *testing.T) {
	want := []string{
		store.ToolRecentDocuments,
		store.ToolFindDocumentByID,
		store.ToolCustomerProductCount,
		store.ToolCustomerOrderTotal,
	}

	descs := NewToolbox(nil).Describe()
	if len(descs) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(descs))
	}
	for i, name := range want {
		if descs[i].Name != name {
			t.Fatalf("tool %d: got %q, want %q", i, descs[i].Name, name)
		}
		if descs[i].InputSchema == nil {
			t.Fatalf("tool %q: missing input schema", name)
		}
	}
}

type fakeExecutor struct {
	fn func(ctx context.Context, tool string, args protocol.Arguments) (store.Outcome, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, tool string, args protocol.Arguments) (store.Outcome, error) {
	return f.fn(ctx, tool, args)
}

func newE2EFixture(t *testing.T) *httptest.Server {
	t.Helper()

	exec := &fakeExecutor{fn: func(_ context.Context, tool string, args protocol.Arguments) (store.Outcome, error) {
		switch tool {
		case store.ToolFindDocumentByID:
			return store.OK(map[string]any{"_id": args["document_id"].String(), "status": "paid"}), nil
		case store.ToolRecentDocuments:
			if n := args["n"].Int(); n < 1 || n > 20 {
				return store.Soft(store.SoftError{
					Error:      fmt.Sprintf("n must be between 1 and 20, got %d", n),
					StatusCode: 400,
				}), nil
			}
			return store.OK([]map[string]any{}), nil
		}
		return store.Outcome{}, fmt.Errorf("no backing operation for tool %q", tool)
	}}

	l := logrus.New()
	l.SetOutput(io.Discard)
	log := l.WithField("component", "test")

	ts := httptest.NewServer(mcp.NewHandler(NewMCPServer(exec, log), log))
	t.Cleanup(ts.Close)
	return ts
}

func postEnvelope(t *testing.T, url, body string) map[string]any {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return out
}

func contentText(t *testing.T, envelope map[string]any) string {
	t.Helper()
	result, ok := envelope["result"].(map[string]any)
	if !ok {
		t.Fatalf("missing result: %v", envelope)
	}
	content, ok := result["content"].([]any)
	if !ok || len(content) != 1 {
		t.Fatalf("unexpected content shape: %v", result)
	}
	text, ok := content[0].(map[string]any)["text"].(string)
	if !ok {
		t.Fatalf("text must be a string: %v", content[0])
	}
	return text
}

func TestEndToEndFindDocumentByID(t *testing.T) {
	ts := newE2EFixture(t)

	envelope := postEnvelope(t, ts.URL+"/",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"find_document_by_id","arguments":{"db_name":"shop","collection_name":"orders","document_id":"abc123"}}}`)
	if envelope["error"] != nil {
		t.Fatalf("unexpected error: %v", envelope["error"])
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(contentText(t, envelope)), &doc); err != nil {
		t.Fatalf("text is not a string-serialized record: %v", err)
	}
	if doc["_id"] != "abc123" || doc["status"] != "paid" {
		t.Fatalf("record not preserved: %v", doc)
	}
}

func TestEndToEndOutOfRangeCountIsSoft(t *testing.T) {
	ts := newE2EFixture(t)

	envelope := postEnvelope(t, ts.URL+"/",
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_recent_documents","arguments":{"db_name":"shop","collection_name":"orders","n":25}}}`)
	if envelope["error"] != nil {
		t.Fatalf("bounds violation must not be a hard error: %v", envelope["error"])
	}
	if text := contentText(t, envelope); !strings.Contains(text, "between 1 and 20") {
		t.Fatalf("expected bounds message, got %q", text)
	}
}

func TestEndToEndStringArgumentCoercion(t *testing.T) {
	ts := newE2EFixture(t)

	// "5" coerces to integer 5 and the call succeeds.
	envelope := postEnvelope(t, ts.URL+"/",
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_recent_documents","arguments":{"db_name":"shop","collection_name":"orders","n":"5"}}}`)
	if envelope["error"] != nil {
		t.Fatalf("string count should coerce: %v", envelope["error"])
	}

	// "abc" fails validation before the backing operation runs.
	envelope = postEnvelope(t, ts.URL+"/",
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_recent_documents","arguments":{"db_name":"shop","collection_name":"orders","n":"abc"}}}`)
	errObj, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected hard error, got %v", envelope)
	}
	if errObj["code"] != float64(protocol.CodeInternalError) {
		t.Fatalf("expected -32603, got %v", errObj["code"])
	}
	if data, _ := errObj["data"].(string); !strings.Contains(data, `"n"`) {
		t.Fatalf("diagnostic must name n: %v", errObj["data"])
	}
}
