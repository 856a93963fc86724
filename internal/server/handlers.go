package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/resumify/backend/internal/extract"
	"github.com/resumify/backend/internal/pipeline"
	"github.com/resumify/backend/internal/server/middleware"
	"github.com/resumify/backend/internal/server/usage"
)

// handleRoot reports backend liveness for dashboards.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "backend ok"})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime_ms": time.Since(s.startedAt).Milliseconds(),
		"version":   apiVersion,
	})
}

// parseResponse is the /parse payload.
type parseResponse struct {
	*pipeline.Result
	Usage usage.Snapshot `json:"usage"`
}

// handleParse accepts a multipart resume upload, extracts its text, and
// returns the parsed resume with quality and ATS analysis. Usage is billed
// once the upload is readable, before the parsing work runs.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		if tooLarge(err) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		if tooLarge(err) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		s.logger.Error("reading upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Internal parse error")
		return
	}

	text, err := extract.FromUpload(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		status := HTTPStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Internal parse error"
		}
		s.logger.Warn("text extraction failed",
			zap.String("filename", header.Filename),
			zap.Int("size", len(data)),
			zap.Error(err),
		)
		s.errorResponse(w, status, message)
		return
	}

	caller := middleware.Caller(r)
	ok, inc, plan := s.usage.Record(caller)
	if !ok {
		s.planLimitResponse(w, caller, inc, plan)
		return
	}

	result, err := s.pipeline.Run(r.Context(), text)
	if err != nil {
		s.logger.Error("resume parsing failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Internal parse error")
		return
	}

	s.setPlanUsageHeaders(w, inc, plan)
	s.jsonResponse(w, http.StatusOK, parseResponse{
		Result: result,
		Usage:  s.usage.Snapshot(caller),
	})
}

// handleUsage returns every tracked key's consumption plus the plan table.
func (s *Server) handleUsage(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"usage": s.usage.Dump(),
		"plans": s.usage.Plans(),
	})
}

// handlePublicUsage returns the caller's own consumption. Requests without
// an API key read the shared anonymous bucket.
func (s *Server) handlePublicUsage(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.usage.Snapshot(middleware.Caller(r)))
}

// handleUsageReset clears the counters for the key named by the query
// parameter.
func (s *Server) handleUsageReset(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		s.errorResponse(w, http.StatusBadRequest, "query parameter 'key' is required")
		return
	}

	if !s.usage.Reset(key) {
		s.jsonResponse(w, http.StatusOK, map[string]any{"ok": false, "msg": "no such key"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"ok": true})
}

// setPlanUsageHeaders reports per-key plan consumption alongside the per-IP
// limiter headers.
func (s *Server) setPlanUsageHeaders(w http.ResponseWriter, inc usage.Increment, plan usage.Plan) {
	w.Header().Set("X-RateLimit-Limit-Minute", strconv.Itoa(plan.LimitPerMinute))
	w.Header().Set("X-RateLimit-Remaining-Minute", strconv.Itoa(max(plan.LimitPerMinute-inc.UsedMinute, 0)))
	w.Header().Set("X-RateLimit-Used-Minute", strconv.Itoa(inc.UsedMinute))
}

// planLimitResponse writes a 429 when a key's plan quota is spent.
func (s *Server) planLimitResponse(w http.ResponseWriter, caller string, inc usage.Increment, plan usage.Plan) {
	s.setPlanUsageHeaders(w, inc, plan)

	s.logger.Warn("plan limit exceeded",
		zap.String("plan", inc.Plan),
		zap.Int("used_minute", inc.UsedMinute),
		zap.Int("used_month", inc.UsedMonth),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":   "plan_limit_exceeded",
		"message": "Plan limit exceeded. Upgrade or wait for the window to reset.",
		"plan":    inc.Plan,
		"usage":   s.usage.Snapshot(caller),
	})
}

// tooLarge reports whether an upload error came from the request size cap.
func tooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
