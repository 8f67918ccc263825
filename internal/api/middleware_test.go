package api

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inaodev/md2inao/internal/config"
)

func TestRequestLogger_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	s := NewServer(log, config.Config{
		Port:                "0",
		APIKey:              "secret",
		MaxUploadBytes:      1 << 20,
		DefaultList:         "disc",
		MaxListLength:       63,
		MaxInlineListLength: 55,
	})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"request_id"`) {
		t.Errorf("expected request log to carry a request_id, got %s", line)
	}
	if !strings.Contains(line, `"path":"/health"`) {
		t.Errorf("expected request log to carry the path, got %s", line)
	}
	if !strings.Contains(line, `"status":200`) {
		t.Errorf("expected request log to carry the status, got %s", line)
	}
}
