package handler

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/mcoot/courtbot/internal/api/request"
	"github.com/mcoot/courtbot/internal/api/response"
	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/session"
)

// SessionHandler handles inbound chat events from the bridge
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

var messageKinds = []model.MessageKind{model.MessageKindChat, model.MessageKindPollCreation}

// Message handles POST /api/v1/messages
func (h *SessionHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req request.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	kind := model.MessageKind(req.Kind)
	if kind == "" {
		kind = model.MessageKindChat
	}
	if !slices.Contains(messageKinds, kind) {
		WriteError(w, NewInvalidRequestError("kind must be chat or poll_creation"))
		return
	}

	result, err := h.controller.HandleMessage(r.Context(), model.ChatMessage{
		Sender:   req.Sender,
		Text:     req.Text,
		Kind:     kind,
		FromSelf: req.FromSelf,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultFromSession(result))
}

// PollVote handles POST /api/v1/poll-votes
func (h *SessionHandler) PollVote(w http.ResponseWriter, r *http.Request) {
	var req request.PollVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.controller.HandlePollVote(r.Context(), model.PollVote{
		Voter:           req.Voter,
		PollText:        req.PollText,
		SelectedOptions: req.SelectedOptions,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultFromSession(result))
}
