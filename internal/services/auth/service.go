package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/courtbot/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidHash  = errors.New("token hash is not a bcrypt hash")
)

// Service verifies the bearer token used by the chat bridge and admin tools
// against a bcrypt hash. With no hash configured every request is allowed.
type Service struct {
	hash  []byte
	clock clock.Clock

	// Only the configured token can verify, so a single cache slot suffices
	mu            sync.RWMutex
	verified      string
	verifiedUntil time.Time

	cacheDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// TokenHash is a bcrypt hash of the API token; empty disables auth
	TokenHash string
	// CacheDuration is how long a verified token skips bcrypt
	CacheDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		CacheDuration: 10 * time.Minute,
	}
}

// New creates a new auth Service
func New(clock clock.Clock, cfg Config) (*Service, error) {
	if cfg.CacheDuration == 0 {
		cfg.CacheDuration = DefaultConfig().CacheDuration
	}

	hash := strings.TrimSpace(cfg.TokenHash)
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, ErrInvalidHash
		}
	}

	return &Service{
		hash:          []byte(hash),
		clock:         clock,
		cacheDuration: cfg.CacheDuration,
	}, nil
}

// Enabled reports whether a token is required
func (s *Service) Enabled() bool {
	return len(s.hash) > 0
}

// Authenticate checks a bearer token
func (s *Service) Authenticate(token string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrInvalidToken
	}

	key := digest(token)
	now := s.clock.Now()

	s.mu.RLock()
	cached := s.verified == key && now.Before(s.verifiedUntil)
	s.mu.RUnlock()
	if cached {
		return nil
	}

	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(token)); err != nil {
		return ErrInvalidToken
	}

	s.mu.Lock()
	s.verified = key
	s.verifiedUntil = now.Add(s.cacheDuration)
	s.mu.Unlock()
	return nil
}

// HashToken returns the bcrypt hash to configure for token
func HashToken(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
