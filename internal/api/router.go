package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/courtbot/internal/api/apierr"
	"github.com/mcoot/courtbot/internal/api/handler"
	apimiddleware "github.com/mcoot/courtbot/internal/api/middleware"
	"github.com/mcoot/courtbot/internal/api/response"
	"github.com/mcoot/courtbot/internal/dependencies/random"
	"github.com/mcoot/courtbot/internal/services/auth"
	"github.com/mcoot/courtbot/internal/services/session"
	"github.com/mcoot/courtbot/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Session     *session.Controller
	Hub         *sse.Hub
	// Random names SSE subscribers in logs (optional)
	Random      random.Random
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Session)
	rosterHandler := handler.NewRosterHandler(cfg.Session)
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}
	eventsHandler := handler.NewEventsHandler(cfg.Hub, rnd)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := apimiddleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check and read-only routes (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/roster", rosterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/roster/status", rosterHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Inbound events from the chat bridge and admin overrides
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/messages", sessionHandler.Message).Methods(http.MethodPost)
	protected.HandleFunc("/poll-votes", sessionHandler.PollVote).Methods(http.MethodPost)
	protected.HandleFunc("/roster/reset", rosterHandler.Reset).Methods(http.MethodPost)
	protected.HandleFunc("/roster/courts", rosterHandler.SetCourts).Methods(http.MethodPut)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
