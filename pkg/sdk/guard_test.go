package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/barctl/pkg/sdk"
)

func userWithRole(role sdk.Role) *sdk.User {
	return &sdk.User{ID: 1, Username: string(role), Role: role}
}

func TestIsAllowedMatchesAllowListExactly(t *testing.T) {
	adminOnly := []sdk.Role{sdk.RoleAdmin}
	staff := []sdk.Role{sdk.RoleAdmin, sdk.RoleBartender}
	everyone := []sdk.Role{sdk.RoleAdmin, sdk.RoleBartender, sdk.RoleGuest}

	tests := []struct {
		name    string
		user    *sdk.User
		allowed []sdk.Role
		want    bool
	}{
		{"admin on admin-only", userWithRole(sdk.RoleAdmin), adminOnly, true},
		{"bartender on admin-only", userWithRole(sdk.RoleBartender), adminOnly, false},
		{"guest on admin-only", userWithRole(sdk.RoleGuest), adminOnly, false},
		{"admin on staff", userWithRole(sdk.RoleAdmin), staff, true},
		{"bartender on staff", userWithRole(sdk.RoleBartender), staff, true},
		{"guest on staff", userWithRole(sdk.RoleGuest), staff, false},
		{"admin on everyone", userWithRole(sdk.RoleAdmin), everyone, true},
		{"bartender on everyone", userWithRole(sdk.RoleBartender), everyone, true},
		{"guest on everyone", userWithRole(sdk.RoleGuest), everyone, true},
		{"nil user on everyone", nil, everyone, false},
		{"nil user on admin-only", nil, adminOnly, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sdk.IsAllowed(tt.user, tt.allowed...))
		})
	}
}

func TestResolveRedirectsToLoginWithDestination(t *testing.T) {
	route, ok := sdk.RouteByPath(sdk.DefaultRoutes, "/users")
	require.True(t, ok)

	d := sdk.Resolve(nil, route)
	assert.False(t, d.Allowed)
	assert.Equal(t, sdk.LoginPath, d.RedirectTo)
	assert.Equal(t, "/users", d.Next, "post-login destination is the requested route")

	d = sdk.Resolve(userWithRole(sdk.RoleGuest), route)
	assert.False(t, d.Allowed)

	d = sdk.Resolve(userWithRole(sdk.RoleAdmin), route)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.RedirectTo)
}

// Navigation filtering uses the same predicate as route guarding: the two
// can never disagree.
func TestVisibleRoutesNeverDivergesFromGuard(t *testing.T) {
	for _, role := range []sdk.Role{sdk.RoleAdmin, sdk.RoleBartender, sdk.RoleGuest} {
		user := userWithRole(role)
		visible := sdk.VisibleRoutes(user, sdk.DefaultRoutes)

		byPath := make(map[string]bool, len(visible))
		for _, r := range visible {
			byPath[r.Path] = true
		}
		for _, r := range sdk.DefaultRoutes {
			assert.Equal(t, sdk.Resolve(user, r).Allowed, byPath[r.Path], "role %s, route %s", role, r.Path)
		}
	}

	assert.Empty(t, sdk.VisibleRoutes(nil, sdk.DefaultRoutes))
}

func TestGuestSeesOnlyPublicAreas(t *testing.T) {
	visible := sdk.VisibleRoutes(userWithRole(sdk.RoleGuest), sdk.DefaultRoutes)

	paths := make([]string, len(visible))
	for i, r := range visible {
		paths[i] = r.Path
	}
	assert.Equal(t, []string{"/recipes", "/orders"}, paths)
}
