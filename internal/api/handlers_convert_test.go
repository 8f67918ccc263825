package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inaodev/md2inao/internal/config"
)

func testServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, config.Config{
		Port:                "0",
		APIKey:              "secret",
		MaxUploadBytes:      1 << 20,
		DefaultList:         "disc",
		MaxListLength:       63,
		MaxInlineListLength: 10,
	})
}

func TestHandleConvert(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("POST", "/api/convert", strings.NewReader("# Title\n"))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.Text != "■Title\n" {
		t.Errorf("expected %q, got %q", "■Title\n", resp.Text)
	}
}

func TestHandleConvert_ReturnsWarnings(t *testing.T) {
	s := testServer()

	// 20 columns against an inline list limit of 10.
	src := "```\n0123456789abcdefghij\n```\n"
	req := httptest.NewRequest("POST", "/api/convert", strings.NewReader(src))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Text     string `json:"text"`
		Warnings []struct {
			Width int `json:"width"`
			Limit int `json:"limit"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if !strings.Contains(resp.Text, "0123456789abcdefghij") {
		t.Errorf("oversized block should still be emitted: %q", resp.Text)
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(resp.Warnings))
	}
	if resp.Warnings[0].Width != 20 || resp.Warnings[0].Limit != 10 {
		t.Errorf("expected width 20 limit 10, got %+v", resp.Warnings[0])
	}
}

func TestHandleConvert_RequiresAuth(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("POST", "/api/convert", strings.NewReader("# Title\n"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != 401 {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest("POST", "/api/convert", strings.NewReader("# Title\n"))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != 401 {
		t.Errorf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}
