package handler

import (
	"encoding/json"
	"net/http"

	"github.com/partydeck/partydeck-go/internal/api/middleware"
	"github.com/partydeck/partydeck-go/internal/api/request"
	"github.com/partydeck/partydeck-go/internal/api/response"
	"github.com/partydeck/partydeck-go/internal/report"
)

// ReportHandler handles the bug-report relay endpoint
type ReportHandler struct {
	reports *report.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// ReportBug handles POST /api/v1/report-bug
func (h *ReportHandler) ReportBug(w http.ResponseWriter, r *http.Request) {
	var req request.ReportBugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Message == "" {
		WriteError(w, NewInvalidRequestError("message is required"))
		return
	}

	rep := report.Report{Message: req.Message}
	// Attribution is best effort; anonymous reports are accepted
	if sess := middleware.GetSession(r.Context()); sess != nil {
		rep.RoomCode = string(sess.RoomCode)
		rep.Username = sess.Username
	}

	if err := h.reports.Relay(r.Context(), rep); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
