// Package sdk is the client-side session and API-access layer for the
// bartender app's backend services. It maintains the authenticated session
// across process restarts, attaches the bearer credential to every
// outbound request, transparently recovers from credential expiry through
// a single-flight refresh protocol, and gates capabilities by role.
package sdk

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Config wires a Services bundle.
type Config struct {
	// Base endpoints, one per backend service.
	AuthURL      string
	InventoryURL string
	OrderURL     string
	PricingURL   string

	// Storage persists the credential pair across restarts. Nil degrades
	// to in-memory only.
	Storage Storage

	// OnSessionExpired fires once per exhausted refresh, before the
	// failing caller observes its error. The UI layer hooks its
	// redirect-to-login here.
	OnSessionExpired func()

	// Logger defaults to a silent logger.
	Logger zerolog.Logger

	// Transport overrides the underlying round tripper inside the
	// pipeline, mainly for tests.
	Transport http.RoundTripper
}

// Services is the client pool: one typed client per backend service, all
// sharing one credential store, one session manager and one interceptor
// pipeline.
type Services struct {
	Session   *SessionManager
	Identity  *IdentityClient
	Inventory *InventoryClient
	Orders    *OrderingClient
	Pricing   *PricingClient

	creds *CredentialStore
}

// New assembles the full client stack from cfg.
func New(cfg Config) *Services {
	logger := cfg.Logger

	creds := NewCredentialStore(cfg.Storage)

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	bareAuth := NewClient(cfg.AuthURL, &http.Client{Transport: base}, logger)
	ref := &refresher{
		creds:  creds,
		logger: logger,
	}
	pipeline := &http.Client{Transport: &authTransport{
		base:      base,
		creds:     creds,
		refresher: ref,
		logger:    logger,
	}}

	identity := NewIdentityClient(NewClient(cfg.AuthURL, pipeline, logger), bareAuth)
	ref.identity = identity

	session := newSessionManager(creds, identity, cfg.OnSessionExpired, logger)
	ref.hooks = session

	return &Services{
		Session:   session,
		Identity:  identity,
		Inventory: NewInventoryClient(NewClient(cfg.InventoryURL, pipeline, logger)),
		Orders:    NewOrderingClient(NewClient(cfg.OrderURL, pipeline, logger)),
		Pricing:   NewPricingClient(NewClient(cfg.PricingURL, pipeline, logger)),
		creds:     creds,
	}
}

// Credentials exposes the shared credential store, mainly so a UI shell
// can inspect login state without poking the session.
func (s *Services) Credentials() *CredentialStore {
	return s.creds
}
