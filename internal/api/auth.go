package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/confideapp/confide/internal/model"
)

// Credentials is the login/registration result: the bearer token plus the
// initial profile snapshot. Persisting the token is the caller's job (the
// session store); the client itself holds no session state.
type Credentials struct {
	Token   string        `json:"token"`
	Profile model.Profile `json:"user"`
}

// Register completes registration for a new anonymous handle.
func (c *Client) Register(ctx context.Context, username, password string) (*Credentials, error) {
	username = strings.TrimSpace(username)
	if len(username) < model.UsernameMinLen || len(username) > model.UsernameMaxLen {
		return nil, fmt.Errorf("username must be %d-%d characters", model.UsernameMinLen, model.UsernameMaxLen)
	}
	var creds Credentials
	err := c.post(ctx, "/api/v1/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Login authenticates with username and password.
func (c *Client) Login(ctx context.Context, username, password string) (*Credentials, error) {
	var creds Credentials
	err := c.post(ctx, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// RedeemCode exchanges an invite/access code for a session token.
func (c *Client) RedeemCode(ctx context.Context, code string) (*Credentials, error) {
	var creds Credentials
	err := c.post(ctx, "/api/v1/auth/redeem", map[string]string{"code": code}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Me fetches a fresh profile snapshot. This is the authoritative source for
// every entitlement-dependent value (credits, premium, ban state, gift
// counter).
func (c *Client) Me(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := c.get(ctx, "/api/v1/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
