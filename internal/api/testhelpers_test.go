package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// decodeJSONBody reads and decodes a request body in handlers used by tests.
func decodeJSONBody(t *testing.T, r *http.Request, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read request body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}
