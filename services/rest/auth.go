package rest

import (
	"context"
	"net/http"

	"github.com/coachly/mobile/core/account"
	"github.com/coachly/mobile/core/session"
)

// AuthPayload is the backend's response to login and registration: the
// user fields plus a bearer token.
type AuthPayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone_no"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// User converts the payload into a session user, token excluded. The
// role is validated later, at the session boundary.
func (p AuthPayload) User() session.User {
	return session.User{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Role:  session.Role(p.Role),
	}
}

// Register creates an account. The form's wire-named fields are sent as is.
func (c *Client) Register(ctx context.Context, form account.RegisterForm) (AuthPayload, error) {
	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", form, &payload, "Registration failed"); err != nil {
		return AuthPayload{}, err
	}
	return payload, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, form account.LoginForm) (AuthPayload, error) {
	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", form, &payload, "Login failed"); err != nil {
		return AuthPayload{}, err
	}
	return payload, nil
}
