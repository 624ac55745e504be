package sdk

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const headerRequestID = "X-Request-Id"

// sessionHooks is how the pipeline requests session transitions. It never
// assigns session state itself.
type sessionHooks interface {
	credentialsRefreshed(ctx context.Context)
	sessionExpired(ctx context.Context, cause error)
}

type retryMarkerKey struct{}

func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retryMarkerKey{}, true)
}

func isRetried(ctx context.Context) bool {
	return ctx.Value(retryMarkerKey{}) != nil
}

// authTransport is the shared interceptor pipeline: it attaches the bearer
// credential on the way out and runs the single-flight refresh-and-retry
// protocol on 401 responses. One instance is shared by every service
// client in a Services bundle.
type authTransport struct {
	base      http.RoundTripper
	creds     *CredentialStore
	refresher *refresher
	logger    zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	// The bootstrap verification call supplies its own bearer; everything
	// else reads the access credential from the store, never the session.
	if r.Header.Get("Authorization") == "" {
		if token, ok := t.creds.AccessToken(); ok {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if r.Header.Get(headerRequestID) == "" {
		r.Header.Set(headerRequestID, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	if isRetried(req.Context()) {
		// Already retried once: propagate the 401 unchanged.
		return resp, nil
	}

	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()

	token, err := t.refresher.refresh(req.Context())
	if err != nil {
		return nil, err
	}

	retry := req.Clone(markRetried(req.Context()))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)
	t.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("resending request with refreshed credential")
	return t.RoundTrip(retry)
}

// refresher runs the refresh protocol. The singleflight group is the
// refresh ticket: while one refresh is in flight every concurrent 401
// waits on it instead of starting its own, so N failing requests produce
// exactly one refresh call, and the ticket resolves in exactly one place.
type refresher struct {
	group    singleflight.Group
	creds    *CredentialStore
	identity *IdentityClient
	logger   zerolog.Logger

	// hooks is assigned once during Services wiring, before any request
	// can flow through the pipeline.
	hooks sessionHooks
}

// refresh exchanges the refresh credential for a new pair and returns the
// new access token. Any failure is terminal: credentials are cleared, the
// session is driven to Unauthenticated and ErrSessionExpired is returned,
// for this caller and for every caller waiting on the same ticket.
func (f *refresher) refresh(ctx context.Context) (string, error) {
	v, err, _ := f.group.Do("refresh", func() (any, error) {
		// Detached from the first caller's context: the shared outcome
		// must not die with one canceled request.
		ctx := context.WithoutCancel(ctx)

		refreshToken, ok := f.creds.RefreshToken()
		if !ok {
			return nil, f.expire(ctx, errors.New("no refresh credential stored"))
		}

		f.logger.Debug().Msg("refreshing credentials")
		resp, err := f.identity.Refresh(ctx, refreshToken)
		if err != nil {
			return nil, f.expire(ctx, err)
		}

		// A logout may have raced the refresh round trip. Its outcome is
		// then discarded: no re-store, no session mutation.
		if current, ok := f.creds.RefreshToken(); !ok || current != refreshToken {
			return nil, sessionExpiredError(errors.New("session ended during refresh"))
		}

		f.creds.SetPair(resp.Token, resp.RefreshToken)
		if f.hooks != nil {
			f.hooks.credentialsRefreshed(ctx)
		}
		f.logger.Debug().Msg("credentials refreshed")
		return resp.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// expire is the single exit for a failed refresh: clear the pair, drive
// the session to Unauthenticated (which triggers the login redirect), and
// hand back the terminal error.
func (f *refresher) expire(ctx context.Context, cause error) error {
	f.creds.ClearPair()
	if f.hooks != nil {
		f.hooks.sessionExpired(ctx, cause)
	}
	return sessionExpiredError(cause)
}
