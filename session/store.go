// Package session owns the client's authentication state machine: Anonymous
// until a login succeeds, AwaitingOTP while a one-time code is outstanding,
// Authenticated once the code verifies. The durable subset of the state is
// persisted so a restart does not force a fresh login.
package session

import (
	"context"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"spana-admin/api"
	"spana-admin/models"
)

// Store holds the session state and exposes the session-gated actions.
// Token and user are written only by a successful OTP verification and
// cleared only by a failed one or by Logout.
type Store struct {
	mu sync.RWMutex

	api     *api.Client
	logger  *zap.Logger
	storage *fileStorage

	loginURL string
	otpURL   string

	token           string
	user            *models.AuthUser
	isAuthenticated bool
	pendingEmail    string
	isLoading       bool
	lastErr         string
}

// Options configures a session store.
type Options struct {
	LoginURL string
	OTPURL   string
	// SessionFile is the path of the persisted session entry.
	SessionFile string
	// Fs defaults to the OS filesystem; tests inject a memory fs.
	Fs afero.Fs
}

// NewStore creates the session store and restores any persisted session.
func NewStore(client *api.Client, logger *zap.Logger, opts Options) *Store {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Store{
		api:      client,
		logger:   logger,
		storage:  newFileStorage(fs, opts.SessionFile),
		loginURL: opts.LoginURL,
		otpURL:   opts.OTPURL,
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	state, err := s.storage.load()
	if err != nil {
		s.logger.Warn("failed to restore persisted session", zap.Error(err))
		return
	}
	if state == nil {
		return
	}
	if state.IsAuthenticated && state.Token == "" {
		// An authenticated session always carries a token; drop the entry.
		s.logger.Warn("discarding corrupt persisted session")
		return
	}
	s.token = state.Token
	s.user = state.User
	s.isAuthenticated = state.IsAuthenticated
	s.pendingEmail = state.PendingEmail
}

// saveLocked persists the durable subset. Callers must hold s.mu.
func (s *Store) saveLocked() {
	state := persistedState{
		Token:           s.token,
		User:            s.user,
		IsAuthenticated: s.isAuthenticated,
		PendingEmail:    s.pendingEmail,
	}
	if err := s.storage.save(state); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
}

// Login runs the password step. On success the server must demand a second
// factor; the pending email is held until the code is verified. A response
// that skips the OTP step is treated as a broken handshake, not a login.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.isLoading = true
	s.lastErr = ""
	s.pendingEmail = ""
	s.saveLocked()
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, s.loginURL, email, password)
	if err != nil {
		s.mu.Lock()
		s.isLoading = false
		s.lastErr = err.Error()
		s.pendingEmail = ""
		s.mu.Unlock()
		return err
	}
	if !resp.RequiresOTP {
		perr := &api.ProtocolError{Message: "Unexpected response from server"}
		s.mu.Lock()
		s.isLoading = false
		s.lastErr = perr.Message
		s.mu.Unlock()
		return perr
	}

	s.mu.Lock()
	s.isLoading = false
	s.lastErr = ""
	s.pendingEmail = resp.Email
	if s.pendingEmail == "" {
		s.pendingEmail = email
	}
	s.saveLocked()
	s.mu.Unlock()

	s.logger.Info("login accepted, awaiting OTP", zap.String("email", resp.Email))
	return nil
}

// VerifyOTP exchanges the one-time code for a bearer token. An empty email
// fails fast without touching the network. Failure leaves the session
// unauthenticated and tokenless.
func (s *Store) VerifyOTP(ctx context.Context, email, otp string) error {
	if email == "" {
		return &api.ValidationError{Message: "Email is required for OTP verification."}
	}

	s.mu.Lock()
	s.isLoading = true
	s.lastErr = ""
	s.mu.Unlock()

	resp, err := s.api.VerifyOTP(ctx, s.otpURL, email, otp)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.lastErr = err.Error()
		s.token = ""
		s.user = nil
		s.isAuthenticated = false
		s.pendingEmail = ""
		s.saveLocked()
		return err
	}

	s.token = resp.Token
	s.user = resp.User
	s.isAuthenticated = true
	s.lastErr = ""
	s.pendingEmail = ""
	s.saveLocked()
	s.logger.Info("session authenticated", zap.String("email", email))
	return nil
}

// Logout synchronously resets the session and erases the persisted entry.
// No network call is made; a fetch already in flight is not affected.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.isAuthenticated = false
	s.pendingEmail = ""
	s.lastErr = ""
	if err := s.storage.clear(); err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// ClearError clears a lingering error message. Safe to call when none is set.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// Credentials returns the bearer token when the session is authenticated.
func (s *Store) Credentials() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isAuthenticated || s.token == "" {
		return "", false
	}
	return s.token, true
}

// Token returns the held bearer token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the profile snapshot captured at verification, if any.
func (s *Store) User() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a verified token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// PendingEmail returns the email captured after the password step, empty
// outside the login → verification window.
func (s *Store) PendingEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingEmail
}

// IsLoading reports whether a session operation is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// Err returns the last operation's error message, empty when none.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
