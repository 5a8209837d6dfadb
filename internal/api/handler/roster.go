package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/courtbot/internal/api/request"
	"github.com/mcoot/courtbot/internal/api/response"
	"github.com/mcoot/courtbot/internal/services/session"
)

// RosterHandler handles roster queries and admin overrides
type RosterHandler struct {
	controller *session.Controller
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(controller *session.Controller) *RosterHandler {
	return &RosterHandler{controller: controller}
}

// Get handles GET /api/v1/roster
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RosterFromModel(h.controller.Snapshot()))
}

// Status handles GET /api/v1/roster/status
func (h *RosterHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Status{Status: h.controller.Status()})
}

// Reset handles POST /api/v1/roster/reset
func (h *RosterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	text, err := h.controller.Reset(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Status{Status: text})
}

// SetCourts handles PUT /api/v1/roster/courts
func (h *RosterHandler) SetCourts(w http.ResponseWriter, r *http.Request) {
	var req request.SetCourtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	if req.Count < 1 {
		WriteError(w, NewInvalidRequestError("count must be at least 1"))
		return
	}

	result, err := h.controller.SetCourts(req.Count)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultFromSession(result))
}
