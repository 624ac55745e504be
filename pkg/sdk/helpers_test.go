package sdk_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/barctl/pkg/sdk"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// seededStorage returns a MemoryStorage holding the given pair.
func seededStorage(t *testing.T, access, refresh string) *sdk.MemoryStorage {
	t.Helper()
	s := sdk.NewMemoryStorage()
	if access != "" {
		require.NoError(t, s.Set(sdk.StorageKeyAccessToken, access))
	}
	if refresh != "" {
		require.NoError(t, s.Set(sdk.StorageKeyRefreshToken, refresh))
	}
	return s
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func bearer(r *http.Request) string {
	return r.Header.Get("Authorization")
}

func testUser() sdk.User {
	return sdk.User{
		ID:       1,
		Username: "admin",
		Email:    "admin@bar.local",
		Role:     sdk.RoleAdmin,
	}
}
