package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/courtbot/internal/dependencies/clock"
	"github.com/mcoot/courtbot/internal/dependencies/random"
	"github.com/mcoot/courtbot/internal/services/auth"
	"github.com/mcoot/courtbot/internal/services/capacity"
	"github.com/mcoot/courtbot/internal/services/classifier"
	"github.com/mcoot/courtbot/internal/services/resolver"
	"github.com/mcoot/courtbot/internal/services/roster"
	"github.com/mcoot/courtbot/internal/services/session"
	"github.com/mcoot/courtbot/internal/storage"
	"github.com/mcoot/courtbot/internal/storage/memory"
	redisstorage "github.com/mcoot/courtbot/internal/storage/redis"
	"github.com/mcoot/courtbot/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultLocation is where the session is played unless the organizer says otherwise
const DefaultLocation = "Batts"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Roster      *roster.Store
	Resolver    *resolver.Resolver
	Classifier  classifier.Classifier
	Session     *session.Controller
	AuthService *auth.Service
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// CapacityConfig selects the capacity policy
type CapacityConfig struct {
	Mode        capacity.Mode
	MaxPerCourt int
	MinPerCourt int
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the history backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// HistorySize caps the in-memory history (optional)
	HistorySize int

	// DefaultLocation is restored on reset (optional, defaults to DefaultLocation)
	DefaultLocation string
	Capacity        CapacityConfig
	Resolver        resolver.Config
	Session         session.Config

	// OpenAI enables the model-backed classifier; nil uses patterns only
	OpenAI *classifier.OpenAIConfig
	// ClassifyTimeout bounds each model call (optional)
	ClassifyTimeout time.Duration

	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// ReplyDelay bounds the pause before a status is broadcast
	ReplyDelay sse.DelayConfig
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(cfg.HistorySize)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	locations := []string{DefaultLocation, "Lions"}
	if cfg.DefaultLocation != "" && cfg.DefaultLocation != DefaultLocation {
		locations = append([]string{cfg.DefaultLocation}, locations...)
	}
	patterns := classifier.NewPatterns(locations...)

	var cls classifier.Classifier = patterns
	if cfg.OpenAI != nil && cfg.OpenAI.APIKey != "" {
		openaiCfg := *cfg.OpenAI
		openaiCfg.Organizer = cfg.Resolver.Organizer
		openaiCfg.Locations = locations
		cls = classifier.WithFallback(classifier.NewOpenAI(openaiCfg, logger), patterns, cfg.ClassifyTimeout, logger)
	} else {
		logger.Warn("no OpenAI API key configured, classifying with patterns only")
	}

	return newWithDependencies(store, clk, rnd, cls, cfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cls classifier.Classifier, cfg Config, logger *slog.Logger) (*App, error) {
	policy, err := capacity.New(cfg.Capacity.Mode, cfg.Capacity.MaxPerCourt, cfg.Capacity.MinPerCourt)
	if err != nil {
		return nil, err
	}

	authCfg := cfg.AuthConfig
	if authCfg.CacheDuration == 0 {
		authCfg.CacheDuration = auth.DefaultConfig().CacheDuration
	}
	authService, err := auth.New(clk, authCfg)
	if err != nil {
		return nil, err
	}

	resolverCfg := cfg.Resolver
	if resolverCfg.ConfidenceThreshold == 0 {
		resolverCfg.ConfidenceThreshold = resolver.DefaultConfidenceThreshold
	}

	defaultLocation := cfg.DefaultLocation
	if defaultLocation == "" {
		defaultLocation = DefaultLocation
	}

	// Create services
	rosterStore := roster.New(policy, clk, defaultLocation, logger)
	res := resolver.New(rosterStore, clk, resolverCfg, logger)

	hub := sse.NewHub(logger)
	broadcaster := sse.NewBroadcaster(hub, rnd, cfg.ReplyDelay, logger)
	go hub.Run()
	go broadcaster.Run()

	controller := session.NewController(rosterStore, res, cls, store, broadcaster, clk, cfg.Session, logger)

	logger.Info("application wired",
		slog.String("capacity_mode", string(policy.Mode())),
		slog.String("organizer", resolverCfg.Organizer),
		slog.String("location", defaultLocation),
		slog.Bool("auth_enabled", authService.Enabled()))

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		Roster:      rosterStore,
		Resolver:    res,
		Classifier:  cls,
		Session:     controller,
		AuthService: authService,
		Hub:         hub,
		Broadcaster: broadcaster,
	}, nil
}

// Close stops background delivery and releases storage connections
func (a *App) Close() error {
	a.Broadcaster.Close()
	a.Hub.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
