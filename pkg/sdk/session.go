package sdk

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// SessionStatus is the session state machine's current state. Exactly one
// status holds at a time.
type SessionStatus string

const (
	StatusInitializing    SessionStatus = "initializing"
	StatusAuthenticated   SessionStatus = "authenticated"
	StatusUnauthenticated SessionStatus = "unauthenticated"
	StatusAuthFailed      SessionStatus = "auth_failed"
)

// Session is a point-in-time snapshot handed to callers. User is set only
// while the status is Authenticated.
type Session struct {
	Status    SessionStatus
	User      *User
	LastError string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SessionManager owns the session state. It is the single writer: callers
// read snapshots via Current and request transitions via Initialize, Login
// and Logout; the interceptor pipeline requests the forced-expiry
// transition through the sessionHooks interface.
type SessionManager struct {
	mu        sync.Mutex
	status    SessionStatus
	user      *User
	lastError string

	creds     *CredentialStore
	identity  *IdentityClient
	initOnce  sync.Once
	onExpired func()
	logger    zerolog.Logger
}

func newSessionManager(creds *CredentialStore, identity *IdentityClient, onExpired func(), logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		status:    StatusInitializing,
		creds:     creds,
		identity:  identity,
		onExpired: onExpired,
		logger:    logger,
	}
}

// Current returns a snapshot of the session. The returned User is a copy.
func (m *SessionManager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Session{Status: m.status, LastError: m.lastError}
	if m.status == StatusAuthenticated && m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Initialize verifies any stored access credential against the identity
// service and settles the session into Authenticated or Unauthenticated.
// It runs at most once per process; later calls return the settled
// snapshot immediately.
func (m *SessionManager) Initialize(ctx context.Context) Session {
	m.initOnce.Do(func() { m.verifyStored(ctx) })
	return m.Current()
}

func (m *SessionManager) verifyStored(ctx context.Context) {
	token, ok := m.creds.AccessToken()
	if !ok {
		m.transition(StatusUnauthenticated, nil, "")
		return
	}

	// The explicit bearer rides through the full pipeline so an expired
	// access token still gets the refresh-and-retry treatment on startup.
	user, err := m.identity.CurrentUser(ctx, WithBearer(token))
	if err != nil {
		m.logger.Debug().Err(err).Msg("stored credential verification failed")
		m.creds.ClearPair()
		m.transition(StatusUnauthenticated, nil, "")
		return
	}
	m.transition(StatusAuthenticated, user, "")
}

// Login establishes a new session. On any failure the credential pair and
// user are left exactly as they were before the call.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	req := LoginRequest{Username: username, Password: password}
	if err := validate.Struct(req); err != nil {
		verr := validationError(errors.New("username and password are required"))
		m.mu.Lock()
		m.status = StatusAuthFailed
		m.lastError = verr.Message
		m.mu.Unlock()
		return verr
	}

	m.mu.Lock()
	m.status = StatusInitializing // verifying
	m.lastError = ""
	m.mu.Unlock()

	resp, err := m.identity.Login(ctx, req)
	if err != nil {
		m.mu.Lock()
		m.status = StatusAuthFailed
		m.lastError = errorMessage(err)
		m.mu.Unlock()
		m.logger.Debug().Err(err).Str("username", username).Msg("login failed")
		return err
	}

	m.creds.SetPair(resp.Token, resp.RefreshToken)
	user := resp.User
	m.transition(StatusAuthenticated, &user, "")
	m.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("logged in")
	return nil
}

// Logout clears the credential pair and the user. Unconditional,
// idempotent and it cannot fail.
func (m *SessionManager) Logout() {
	m.creds.ClearPair()
	m.transition(StatusUnauthenticated, nil, "")
}

func (m *SessionManager) transition(status SessionStatus, user *User, lastError string) {
	m.mu.Lock()
	m.status = status
	m.user = user
	m.lastError = lastError
	m.mu.Unlock()
}

// credentialsRefreshed implements sessionHooks. After the pipeline swaps
// the pair, the user snapshot is re-fetched so the session view catches up
// with request authorization. The bare client is used on purpose: this
// runs inside the single-flight refresh and must not re-enter it.
func (m *SessionManager) credentialsRefreshed(ctx context.Context) {
	m.mu.Lock()
	active := m.status == StatusAuthenticated
	m.mu.Unlock()
	if !active {
		return
	}

	token, ok := m.creds.AccessToken()
	if !ok {
		return
	}
	user, err := m.identity.currentUserBare(ctx, token)
	if err != nil {
		m.logger.Debug().Err(err).Msg("post-refresh verification failed")
		return
	}

	m.mu.Lock()
	if m.status == StatusAuthenticated {
		m.user = user
	}
	m.mu.Unlock()
}

// sessionExpired implements sessionHooks: the pipeline exhausted the
// refresh protocol. Credentials are already cleared by the caller; this is
// the one transition not initiated by a direct user action.
func (m *SessionManager) sessionExpired(ctx context.Context, cause error) {
	m.mu.Lock()
	wasUnauthenticated := m.status == StatusUnauthenticated
	m.status = StatusUnauthenticated
	m.user = nil
	m.mu.Unlock()

	m.logger.Info().Err(cause).Msg("session expired")
	if !wasUnauthenticated && m.onExpired != nil {
		m.onExpired()
	}
}

func errorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
