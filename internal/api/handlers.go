package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lawdesk/lawdocx"
	"github.com/lawdesk/lawdocx/envelope"
	"github.com/lawdesk/lawdocx/format"
	"github.com/lawdesk/lawdocx/internal/history"
	"github.com/lawdesk/lawdocx/model"
)

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": lawdocx.Tools()})
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	tool := chi.URLParam(r, "tool")
	if !lawdocx.IsTool(tool) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown tool: %s", tool))
		return
	}
	opts, ok := s.requestOptions(w, r)
	if !ok {
		return
	}
	name, data, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	start := time.Now()
	env, err := lawdocx.RunBytes(tool, name, data, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.recordRuns(r, tool, env, time.Since(start))
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.requestOptions(w, r)
	if !ok {
		return
	}
	for _, tool := range splitParam(r, "only") {
		if !lawdocx.IsTool(tool) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown tool: %s", tool))
			return
		}
		opts = append(opts, lawdocx.WithOnly(tool))
	}
	for _, tool := range splitParam(r, "exclude") {
		opts = append(opts, lawdocx.WithExclude(tool))
	}
	name, data, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	start := time.Now()
	env, totals, err := lawdocx.AuditBytes(name, data, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	duration := time.Since(start)
	for _, nested := range env.Tools {
		s.recordRuns(r, strings.TrimPrefix(nested.Tool, "lawdocx-"), nested, duration)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"envelope": env,
		"totals":   totals,
	})
}

const (
	historyDefaultLimit = 50
	historyMaxLimit     = 1000
)

// handleHistory returns the most recent extraction runs, newest first. 404
// when no history store is configured.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := historyDefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > historyMaxLimit {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("limit must be between 1 and %d", historyMaxLimit))
			return
		}
		limit = n
	}

	runs, err := s.history.Recent(limit)
	if err != nil {
		s.log.Error("reading run history", "error", err)
		writeError(w, http.StatusInternalServerError, "reading run history")
		return
	}
	if runs == nil {
		runs = []history.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// requestOptions builds facade options from shared query parameters.
func (s *Server) requestOptions(w http.ResponseWriter, r *http.Request) ([]lawdocx.Option, bool) {
	var opts []lawdocx.Option
	if severity := r.URL.Query().Get("severity"); severity != "" {
		if !model.ValidSeverity(severity) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown severity: %s", severity))
			return nil, false
		}
		opts = append(opts, lawdocx.WithSeverity(severity))
	}
	return opts, true
}

// splitParam collects a query parameter's values, splitting comma lists.
func splitParam(r *http.Request, key string) []string {
	var out []string
	for _, value := range r.URL.Query()[key] {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// readDocument pulls the DOCX payload out of the request: the raw body by
// default, or the "file" field of a multipart form. Uploads beyond the
// configured cap get 413; payloads that aren't DOCX packages get 415.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	name := "upload.docx"
	var data []byte

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return "", nil, false
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing multipart field: file")
			return "", nil, false
		}
		defer file.Close()
		if header.Filename != "" {
			name = header.Filename
		}
		data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading upload")
			return "", nil, false
		}
	} else {
		var err error
		data, err = io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			} else {
				writeError(w, http.StatusBadRequest, "reading request body")
			}
			return "", nil, false
		}
	}

	if int64(len(data)) > s.cfg.MaxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return "", nil, false
	}
	if n := r.URL.Query().Get("name"); n != "" {
		name = n
	}
	if format.Detect(data) != format.DOCX {
		writeError(w, http.StatusUnsupportedMediaType, "payload is not a DOCX package")
		return "", nil, false
	}
	return name, data, true
}

// recordRuns logs one history row per file entry in the envelope.
func (s *Server) recordRuns(r *http.Request, tool string, env model.Envelope, duration time.Duration) {
	if s.history == nil {
		return
	}
	requestID := middleware.GetReqID(r.Context())
	for _, entry := range env.Files {
		totals := envelope.Summarize([]model.FileEntry{entry})
		s.history.RecordAsync(history.Run{
			RequestID:  requestID,
			Tool:       tool,
			Path:       entry.Path,
			SHA256:     entry.SHA256,
			Info:       totals.Info,
			Warning:    totals.Warning,
			Error:      totals.Error,
			DurationUS: duration.Microseconds(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	envelope.WriteJSONLine(w, v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
