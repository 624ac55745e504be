package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// IdentityClient talks to the auth service. Login and Refresh ride the
// bare client: they are the two calls that must never recurse into the
// 401 recovery pipeline. Everything else is bearer-authorized and shares
// the pipeline with the resource clients.
type IdentityClient struct {
	authed *Client
	bare   *Client
}

// NewIdentityClient builds an identity client from a pipeline-wrapped
// client and a bare one against the same base endpoint.
func NewIdentityClient(authed, bare *Client) *IdentityClient {
	return &IdentityClient{authed: authed, bare: bare}
}

// Login exchanges username/password for a credential pair plus the user
// record. The request is validated locally first.
func (c *IdentityClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	var resp LoginResponse
	if err := c.bare.Do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges the refresh credential for a new pair. Any failure
// here means "refresh not possible" to the pipeline.
func (c *IdentityClient) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	var resp RefreshResponse
	if err := c.bare.Do(ctx, http.MethodPost, "/refresh", RefreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the authenticated user's own record.
func (c *IdentityClient) CurrentUser(ctx context.Context, opts ...RequestOption) (*User, error) {
	var user User
	if err := c.authed.Do(ctx, http.MethodGet, "/users/me", nil, &user, opts...); err != nil {
		return nil, err
	}
	return &user, nil
}

// currentUserBare is the post-refresh re-verification path: an explicit
// bearer on the bare client, safe to call from inside the refresh ticket.
func (c *IdentityClient) currentUserBare(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.bare.Do(ctx, http.MethodGet, "/users/me", nil, &user, WithBearer(token)); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users. Admin only, enforced server-side.
func (c *IdentityClient) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.authed.Do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user by ID.
func (c *IdentityClient) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.authed.Do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user. Admin only.
func (c *IdentityClient) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	var user User
	if err := c.authed.Do(ctx, http.MethodPost, "/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user's record.
func (c *IdentityClient) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	var user User
	if err := c.authed.Do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. Admin only.
func (c *IdentityClient) DeleteUser(ctx context.Context, id int64) error {
	return c.authed.Do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
