// Package account is the mock sign-in flow of the dashboard. Accounts live in
// memory; the signed-in profile is kept under the hubdispo-user storage key.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hubdispo/hubdispo/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no user signed in")
	ErrMissingField       = errors.New("missing required field")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

// bcrypt only hashes the first 72 bytes and rejects longer input
const maxPasswordBytes = 72

// Demo account seeded into every service
const (
	DemoEmail    = "demo@hubdispo.be"
	DemoPassword = "demo123"
)

// RegisterRequest carries the sign-up form
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Plan      string `json:"plan"`
}

type account struct {
	profile      models.UserProfile
	passwordHash []byte
}

// Service registers and signs in mock users
type Service struct {
	mu       sync.RWMutex
	accounts map[string]account // by lower-cased email
	storage  LocalStorage
	latency  time.Duration
	logger   *zap.Logger
}

// NewService creates a service with the demo account registered
func NewService(storage LocalStorage, latency time.Duration, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		accounts: make(map[string]account),
		storage:  storage,
		latency:  latency,
		logger:   logger,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	s.accounts[DemoEmail] = account{
		profile: models.UserProfile{
			ID:        uuid.NewString(),
			Email:     DemoEmail,
			FirstName: "Demo",
			LastName:  "User",
			Company:   "Brasserie Van Damme",
			Phone:     "+32 2 555 01 23",
			Plan:      models.PlanBusiness,
		},
		passwordHash: hash,
	}

	return s, nil
}

// Register creates an account and signs it in
func (s *Service) Register(ctx context.Context, req RegisterRequest) (models.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return models.UserProfile{}, err
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return models.UserProfile{}, ErrMissingField
	}
	if len(req.Password) > maxPasswordBytes {
		return models.UserProfile{}, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	plan := req.Plan
	if plan == "" {
		plan = models.PlanStarter
	}
	profile := models.UserProfile{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Phone:     req.Phone,
		Plan:      plan,
	}

	s.mu.Lock()
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		return models.UserProfile{}, ErrEmailTaken
	}
	s.accounts[email] = account{profile: profile, passwordHash: hash}
	s.mu.Unlock()

	if err := s.saveProfile(profile); err != nil {
		return models.UserProfile{}, err
	}

	s.logger.Info("account registered", zap.String("user_id", profile.ID), zap.String("plan", profile.Plan))
	return profile, nil
}

// Login checks the credentials and stores the profile as the current session
func (s *Service) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.RLock()
	acc, ok := s.accounts[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return models.UserProfile{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		s.logger.Debug("login rejected", zap.String("user_id", acc.profile.ID))
		return models.UserProfile{}, ErrInvalidCredentials
	}

	if err := s.saveProfile(acc.profile); err != nil {
		return models.UserProfile{}, err
	}

	s.logger.Info("user signed in", zap.String("user_id", acc.profile.ID))
	return acc.profile, nil
}

// Logout forgets the current session
func (s *Service) Logout() error {
	if err := s.storage.Remove(models.UserProfileKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current returns the signed-in profile
func (s *Service) Current() (models.UserProfile, error) {
	raw, ok, err := s.storage.Get(models.UserProfileKey)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return models.UserProfile{}, ErrNoSession
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return profile, nil
}

func (s *Service) saveProfile(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.storage.Set(models.UserProfileKey, string(data)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// wait simulates the round trip the front-end showed a spinner for
func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
