package factory

import (
	"github.com/mcoot/courtbot/internal/dependencies/mocks"
	"github.com/mcoot/courtbot/internal/services/classifier"
	"github.com/mcoot/courtbot/internal/services/resolver"
	"github.com/mcoot/courtbot/internal/storage/memory"
	"github.com/mcoot/courtbot/internal/testutil"
)

// TestOrganizer is the organizer configured by NewTestApp
const TestOrganizer = "Adam Shin"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies,
// the pattern classifier and no reply delay
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{})
}

// NewTestAppWithConfig is NewTestApp with overrides. An empty organizer
// defaults to TestOrganizer.
func NewTestAppWithConfig(cfg Config) *TestApp {
	store := memory.New(cfg.HistorySize)
	mockClock := mocks.NewMockClock(testutil.FixedTime)
	mockRandom := mocks.NewMockRandom()

	if cfg.Resolver.Organizer == "" {
		cfg.Resolver = resolver.DefaultConfig()
		cfg.Resolver.Organizer = TestOrganizer
	}

	app, err := newWithDependencies(store, mockClock, mockRandom, classifier.NewPatterns(), cfg, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
