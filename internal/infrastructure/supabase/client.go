package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// User is the subset of the identity provider's user record the service needs.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type apiError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) detail() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	default:
		return e.ErrorDescription
	}
}

// Client calls the Supabase auth API server-side using the service role key.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewClient creates a Supabase auth client.
func NewClient(baseURL, serviceKey string, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("apikey", serviceKey).
		SetTimeout(10 * time.Second)
	return &Client{http: httpClient, log: log}
}

// GetUser introspects an access token and returns the user it belongs to.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	var user User
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		SetError(&errBody).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("supabase user lookup: %w", err)
	}
	if resp.IsError() {
		detail := errBody.detail()
		if detail == "" {
			detail = resp.Status()
		}
		c.log.Debug().Int("status", resp.StatusCode()).Str("detail", detail).Msg("token introspection rejected")
		return nil, fmt.Errorf("supabase user lookup: %s", detail)
	}
	return &user, nil
}
