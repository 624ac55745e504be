// Package cli carries the shared runtime wiring for barctl commands: the
// assembled SDK services travel down to subcommands through the cobra
// command context.
package cli

import (
	"context"
	"fmt"

	"github.com/yourusername/barctl/internal/config"
	"github.com/yourusername/barctl/pkg/sdk"
)

type contextKey string

const runtimeKey contextKey = "barctl-runtime"

// Runtime is everything a subcommand needs, injected by the root
// command's PersistentPreRunE.
type Runtime struct {
	Config   *config.Config
	Services *sdk.Services
}

// Inject adds the runtime to a command context.
func Inject(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey, rt)
}

// FromContext retrieves the runtime, if present.
func FromContext(ctx context.Context) (*Runtime, bool) {
	rt, ok := ctx.Value(runtimeKey).(*Runtime)
	return rt, ok
}

// MustFromContext retrieves the runtime or panics; for use inside RunE
// functions, which only run after the root command injected it.
func MustFromContext(ctx context.Context) *Runtime {
	rt, ok := FromContext(ctx)
	if !ok {
		panic("barctl: runtime not found in context - this is a bug in barctl")
	}
	return rt
}

// RequireRoute settles the session and applies the authorization guard
// for the given route path. Commands map onto the same route table the UI
// uses, so CLI gating can never drift from route gating.
func (rt *Runtime) RequireRoute(ctx context.Context, path string) (*sdk.User, error) {
	sess := rt.Services.Session.Initialize(ctx)

	route, ok := sdk.RouteByPath(sdk.DefaultRoutes, path)
	if !ok {
		return nil, fmt.Errorf("unknown route %q", path)
	}

	decision := sdk.Resolve(sess.User, route)
	if !decision.Allowed {
		if sess.User == nil {
			return nil, fmt.Errorf("not logged in; run `barctl auth login` (then retry %s)", decision.Next)
		}
		return nil, fmt.Errorf("%s requires one of roles %v (you are %s)", path, route.Roles, sess.User.Role)
	}
	return sess.User, nil
}
