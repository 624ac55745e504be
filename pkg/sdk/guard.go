package sdk

import "slices"

// LoginPath is the login entry point unauthenticated users are sent to.
const LoginPath = "/login"

// Route is a guarded destination with its role allow-list.
type Route struct {
	Name  string
	Path  string
	Roles []Role
}

// Allows applies the guard predicate to this route.
func (r Route) Allows(user *User) bool {
	return IsAllowed(user, r.Roles...)
}

// DefaultRoutes is the application's route table with its allow-lists.
// Navigation filtering and route guarding both consult this one table.
var DefaultRoutes = []Route{
	{Name: "Dashboard", Path: "/", Roles: []Role{RoleAdmin, RoleBartender}},
	{Name: "Recipes", Path: "/recipes", Roles: []Role{RoleAdmin, RoleBartender, RoleGuest}},
	{Name: "Ingredients", Path: "/ingredients", Roles: []Role{RoleAdmin, RoleBartender}},
	{Name: "Orders", Path: "/orders", Roles: []Role{RoleAdmin, RoleBartender, RoleGuest}},
	{Name: "Users", Path: "/users", Roles: []Role{RoleAdmin}},
}

// IsAllowed reports whether user is present and its role is in the
// allow-list. This is the single authorization predicate: route guarding
// and affordance filtering must never reimplement it.
func IsAllowed(user *User, allowed ...Role) bool {
	if user == nil {
		return false
	}
	return slices.Contains(allowed, user.Role)
}

// Decision is the guard's answer for a navigation attempt.
type Decision struct {
	Allowed bool
	// RedirectTo is set when the attempt is denied: unauthenticated users
	// go to the login entry point, with Next carrying the original
	// destination for after login.
	RedirectTo string
	Next       string
}

// Resolve decides whether user may enter route.
func Resolve(user *User, route Route) Decision {
	if route.Allows(user) {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed:    false,
		RedirectTo: LoginPath,
		Next:       route.Path,
	}
}

// VisibleRoutes filters routes down to the ones user may enter, for menu
// rendering. Same predicate as Resolve, by construction.
func VisibleRoutes(user *User, routes []Route) []Route {
	visible := make([]Route, 0, len(routes))
	for _, r := range routes {
		if r.Allows(user) {
			visible = append(visible, r)
		}
	}
	return visible
}

// RouteByPath looks up a route in a table.
func RouteByPath(routes []Route, path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
