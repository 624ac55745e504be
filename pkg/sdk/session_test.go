package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/barctl/pkg/sdk"
)

// Scenario: a stored, valid access credential settles the session into
// Authenticated without any login call.
func TestInitializeWithValidStoredCredential(t *testing.T) {
	user := testUser()

	var loginCalls, meCalls int32
	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&loginCalls, 1)
	})
	authMux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&meCalls, 1)
		if bearer(r) != "Bearer t1" {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	svc := newServices(authSrv.URL, authSrv.URL, seededStorage(t, "t1", "r1"), nil)

	sess := svc.Session.Initialize(context.Background())
	assert.Equal(t, sdk.StatusAuthenticated, sess.Status)
	require.NotNil(t, sess.User)
	assert.Equal(t, "admin", sess.User.Username)
	assert.Equal(t, sdk.RoleAdmin, sess.User.Role)
	assert.EqualValues(t, 0, atomic.LoadInt32(&loginCalls))

	// Verification runs once per process lifetime.
	svc.Session.Initialize(context.Background())
	assert.EqualValues(t, 1, atomic.LoadInt32(&meCalls))
}

// Scenario: stored credential fails verification and no refresh
// credential exists; the session settles Unauthenticated with both
// storage keys cleared.
func TestInitializeClearsRejectedCredential(t *testing.T) {
	authMux := http.NewServeMux()
	authMux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid token")
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	storage := seededStorage(t, "t1", "") // no refresh credential
	svc := newServices(authSrv.URL, authSrv.URL, storage, nil)

	sess := svc.Session.Initialize(context.Background())
	assert.Equal(t, sdk.StatusUnauthenticated, sess.Status)
	assert.Nil(t, sess.User)

	_, ok := storage.Get(sdk.StorageKeyAccessToken)
	assert.False(t, ok)
	_, ok = storage.Get(sdk.StorageKeyRefreshToken)
	assert.False(t, ok)
}

// No stored credential at all: straight to Unauthenticated, no network.
func TestInitializeWithoutStoredCredential(t *testing.T) {
	var calls int32
	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer authSrv.Close()

	svc := newServices(authSrv.URL, authSrv.URL, sdk.NewMemoryStorage(), nil)

	sess := svc.Session.Initialize(context.Background())
	assert.Equal(t, sdk.StatusUnauthenticated, sess.Status)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

// Scenario: successful login stores the pair and carries the user.
func TestLoginSuccess(t *testing.T) {
	user := testUser()

	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var req sdk.LoginRequest
		assert.NoError(t, decodeBody(r, &req))
		if req.Username != "admin" || req.Password != "password" {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeJSON(w, http.StatusOK, sdk.LoginResponse{Token: "t1", RefreshToken: "r1", User: user})
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	storage := sdk.NewMemoryStorage()
	svc := newServices(authSrv.URL, authSrv.URL, storage, nil)

	require.NoError(t, svc.Session.Login(context.Background(), "admin", "password"))

	sess := svc.Session.Current()
	assert.Equal(t, sdk.StatusAuthenticated, sess.Status)
	require.NotNil(t, sess.User)
	assert.Equal(t, sdk.RoleAdmin, sess.User.Role)
	assert.Empty(t, sess.LastError)

	access, _ := storage.Get(sdk.StorageKeyAccessToken)
	refresh, _ := storage.Get(sdk.StorageKeyRefreshToken)
	assert.Equal(t, "t1", access)
	assert.Equal(t, "r1", refresh)
}

// A rejected login carries the server's message and leaves credentials
// and user exactly as they were.
func TestLoginFailureKeepsState(t *testing.T) {
	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	storage := sdk.NewMemoryStorage()
	svc := newServices(authSrv.URL, authSrv.URL, storage, nil)

	err := svc.Session.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	var apiErr *sdk.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, sdk.KindAuthorization, apiErr.Kind)

	sess := svc.Session.Current()
	assert.Equal(t, sdk.StatusAuthFailed, sess.Status)
	assert.Equal(t, "invalid credentials", sess.LastError)
	assert.Nil(t, sess.User)

	_, ok := storage.Get(sdk.StorageKeyAccessToken)
	assert.False(t, ok, "failed login must not touch stored credentials")
}

// A subsequent login clears the failed state and retries the normal path.
func TestLoginRecoversFromAuthFailed(t *testing.T) {
	user := testUser()

	var attempt int32
	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempt, 1) == 1 {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeJSON(w, http.StatusOK, sdk.LoginResponse{Token: "t1", RefreshToken: "r1", User: user})
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	svc := newServices(authSrv.URL, authSrv.URL, sdk.NewMemoryStorage(), nil)

	require.Error(t, svc.Session.Login(context.Background(), "admin", "wrong"))
	assert.Equal(t, sdk.StatusAuthFailed, svc.Session.Current().Status)

	require.NoError(t, svc.Session.Login(context.Background(), "admin", "password"))
	sess := svc.Session.Current()
	assert.Equal(t, sdk.StatusAuthenticated, sess.Status)
	assert.Empty(t, sess.LastError)
}

// Empty input is rejected locally: no network call is made.
func TestLoginValidation(t *testing.T) {
	var calls int32
	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer authSrv.Close()

	svc := newServices(authSrv.URL, authSrv.URL, sdk.NewMemoryStorage(), nil)

	err := svc.Session.Login(context.Background(), "", "")
	require.Error(t, err)

	var apiErr *sdk.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, sdk.KindValidation, apiErr.Kind)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
	assert.Equal(t, sdk.StatusAuthFailed, svc.Session.Current().Status)
}

// Logout is idempotent: repeating it when already unauthenticated changes
// nothing and cannot fail.
func TestLogoutIdempotent(t *testing.T) {
	user := testUser()

	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sdk.LoginResponse{Token: "t1", RefreshToken: "r1", User: user})
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	storage := sdk.NewMemoryStorage()
	svc := newServices(authSrv.URL, authSrv.URL, storage, nil)

	require.NoError(t, svc.Session.Login(context.Background(), "admin", "password"))
	svc.Session.Logout()

	check := func() {
		assert.Equal(t, sdk.StatusUnauthenticated, svc.Session.Current().Status)
		_, ok := storage.Get(sdk.StorageKeyAccessToken)
		assert.False(t, ok)
		_, ok = storage.Get(sdk.StorageKeyRefreshToken)
		assert.False(t, ok)
	}
	check()

	svc.Session.Logout() // already unauthenticated
	check()
}

// Snapshots are copies: mutating one does not leak into the session.
func TestSessionSnapshotIsolation(t *testing.T) {
	user := testUser()

	authMux := http.NewServeMux()
	authMux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sdk.LoginResponse{Token: "t1", RefreshToken: "r1", User: user})
	})
	authSrv := httptest.NewServer(authMux)
	defer authSrv.Close()

	svc := newServices(authSrv.URL, authSrv.URL, sdk.NewMemoryStorage(), nil)
	require.NoError(t, svc.Session.Login(context.Background(), "admin", "password"))

	snap := svc.Session.Current()
	snap.User.Username = "tampered"

	assert.Equal(t, "admin", svc.Session.Current().User.Username)
}
