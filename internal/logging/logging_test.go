package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"analyse-relay/internal/reqctx"
)

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "loud", "INFO"} {
		logger := NewWithWriter(&bytes.Buffer{}, level)
		if logger.GetLevel() != zerolog.InfoLevel {
			t.Errorf("level %q: want info, got %s", level, logger.GetLevel())
		}
	}
	if got := NewWithWriter(&bytes.Buffer{}, "debug").GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("want debug, got %s", got)
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info")

	h := reqctx.Middleware(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest("POST", "/api/analyse", nil)
	req.Header.Set(reqctx.HeaderRequestID, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Could not decode log line %q: %v", buf.String(), err)
	}
	if line["rid"] != "rid-1" {
		t.Errorf("want rid 'rid-1', got %v", line["rid"])
	}
	if line["method"] != "POST" || line["path"] != "/api/analyse" {
		t.Errorf("want POST /api/analyse, got %v %v", line["method"], line["path"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Errorf("want status 418, got %v", line["status"])
	}
}
