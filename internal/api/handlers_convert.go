package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/inaodev/md2inao/internal/inao"
)

type convertResponse struct {
	Text     string        `json:"text"`
	Warnings []warningJSON `json:"warnings,omitempty"`
}

type warningJSON struct {
	Width int    `json:"width"`
	Limit int    `json:"limit"`
	Block string `json:"block"`
}

// handleConvert turns a markdown request body (raw, or a multipart "file"
// field) into inao markup. Length violations do not fail the request; they
// come back alongside the converted text.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	src, err := readSource(r, s.cfg.MaxUploadBytes)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The warning handler collects per-request, so each request gets its
	// own converter.
	var warnings []inao.LengthWarning
	conv := inao.New(inao.Config{
		DefaultList:         s.cfg.DefaultList,
		MaxListLength:       s.cfg.MaxListLength,
		MaxInlineListLength: s.cfg.MaxInlineListLength,
	}, s.log, inao.WithWarningHandler(func(lw inao.LengthWarning) {
		warnings = append(warnings, lw)
	}))

	text, err := conv.Convert(src)
	if err != nil {
		jsonError(w, "conversion failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := convertResponse{Text: text}
	for _, lw := range warnings {
		resp.Warnings = append(resp.Warnings, warningJSON{
			Width: lw.Width,
			Limit: lw.Limit,
			Block: lw.Block,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// readSource pulls the markdown out of the request: the "file" field of a
// multipart form, or the raw body otherwise.
func readSource(r *http.Request, maxBytes int64) ([]byte, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("invalid multipart form: %w", err)
		}
		defer r.MultipartForm.RemoveAll()

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("file is required: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read file")
		}
		if int64(len(data)) > maxBytes {
			return nil, fmt.Errorf("file exceeds max size (%d bytes)", maxBytes)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body")
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("body exceeds max size (%d bytes)", maxBytes)
	}
	return data, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
