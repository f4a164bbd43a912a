package api

import (
	"context"
	"net/http"
	"net/url"

	"prodea_gateway/models"
)

// Login posts the credentials as a form, not JSON; the backend uses an
// OAuth2 password form and reads the username field from it.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.LoginResponse
	if err := c.postForm(ctx, "/auth/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*models.RegisterResponse, error) {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp models.RegisterResponse
	if err := c.send(ctx, http.MethodPost, "/auth/register", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
