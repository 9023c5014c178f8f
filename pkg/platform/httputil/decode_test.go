package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type decodeTarget struct {
	AdminCode string `json:"adminCode"`
}

func TestDecodeJSON(t *testing.T) {
	logger := slog.Default()

	t.Run("valid body decodes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"adminCode":"ADM-1"}`))
		w := httptest.NewRecorder()

		got, ok := DecodeJSON[decodeTarget](w, r, logger, "req-1")
		if !ok {
			t.Fatal("expected decode to succeed")
		}
		if got.AdminCode != "ADM-1" {
			t.Fatalf("expected adminCode ADM-1, got %q", got.AdminCode)
		}
	})

	t.Run("malformed body writes 400 and returns false", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{bad-json`))
		w := httptest.NewRecorder()

		got, ok := DecodeJSON[decodeTarget](w, r, logger, "req-2")
		if ok || got != nil {
			t.Fatal("expected decode to fail")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
	})
}
