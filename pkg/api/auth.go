package api

import (
	"context"
	"net/http"
)

// Login authenticates with email/password credentials. The success payload
// decodes into AuthPayload.
func (c *Client) Login(ctx context.Context, creds Credentials) Result {
	return c.do(ctx, http.MethodPost, "/api/users/login", requestOptions{body: creds})
}

// Register creates a new account. The success payload decodes into AuthPayload.
func (c *Client) Register(ctx context.Context, reg Registration) Result {
	return c.do(ctx, http.MethodPost, "/api/users/register", requestOptions{body: reg})
}

// Logout invalidates the given token server-side. The token is passed
// explicitly so a logout can target a session other than the stored one.
func (c *Client) Logout(ctx context.Context, token string) Result {
	return c.do(ctx, http.MethodPost, "/api/users/logout", requestOptions{
		headers: map[string]string{"Authorization": "Bearer " + token},
	})
}

// RecoverPassword asks the server to start a password recovery flow for the
// given email.
func (c *Client) RecoverPassword(ctx context.Context, email string) Result {
	return c.do(ctx, http.MethodPost, "/api/users/forgot-password", requestOptions{
		body: map[string]string{"email": email},
	})
}

// ResetPassword completes a recovery flow with the emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) Result {
	return c.do(ctx, http.MethodPost, "/api/users/reset-password", requestOptions{
		body: map[string]string{"token": token, "newPassword": newPassword},
	})
}

// Profile fetches the authenticated account.
func (c *Client) Profile(ctx context.Context) Result {
	return c.do(ctx, http.MethodGet, "/api/users/me", requestOptions{})
}

// UpdateProfile applies a partial update to the authenticated account.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) Result {
	return c.do(ctx, http.MethodPut, "/api/users/me", requestOptions{body: update})
}

// DeleteAccount removes the authenticated account. The server requires the
// current password as confirmation.
func (c *Client) DeleteAccount(ctx context.Context, password string) Result {
	return c.do(ctx, http.MethodDelete, "/api/users/me", requestOptions{
		body: map[string]string{"password": password},
	})
}
