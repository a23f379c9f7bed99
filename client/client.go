// Package client is a small Go SDK for the photo-sharing API. It keeps
// the session cookie in an http.CookieJar, so a signed-in client stays
// signed in across calls the same way a browser would.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"mesto/internal/domain/entity"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// APIError is the decoded error envelope of a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d, code %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to one API server. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// installed on it if it has none, since the session lives in a cookie.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "create cookie jar")
		}
		c.httpClient.Jar = jar
	}

	return c, nil
}

// SignUpInput is the request body for SignUp. Optional profile fields
// left empty are filled with server-side defaults.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	About    string `json:"about,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// UpdateProfileInput is the request body for UpdateProfile.
type UpdateProfileInput struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// CreateCardInput is the request body for CreateCard.
type CreateCardInput struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account and returns the created user.
func (c *Client) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPost, "/signup", input, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// SignIn logs in. On success the server sets the session cookie, which
// the jar carries on every later call.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/signin", signInRequest{Email: email, Password: password}, nil)
}

// SignOut clears the session cookie.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/signout", nil, nil)
}

// Users lists every registered user.
func (c *Client) Users(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// Me returns the signed-in user's own record.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// User returns a single user by id.
func (c *Client) User(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile updates the signed-in user's name and about fields.
func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPatch, "/users/me", input, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateAvatar updates the signed-in user's avatar URL.
func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*entity.User, error) {
	var user entity.User
	body := map[string]string{"avatar": avatar}
	if err := c.do(ctx, http.MethodPatch, "/users/me/avatar", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Cards lists every card, newest first.
func (c *Client) Cards(ctx context.Context) ([]*entity.Card, error) {
	var cards []*entity.Card
	if err := c.do(ctx, http.MethodGet, "/cards", nil, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// CreateCard creates a card owned by the signed-in user.
func (c *Client) CreateCard(ctx context.Context, input CreateCardInput) (*entity.Card, error) {
	var card entity.Card
	if err := c.do(ctx, http.MethodPost, "/cards", input, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// DeleteCard deletes a card the signed-in user owns and returns it.
func (c *Client) DeleteCard(ctx context.Context, cardID string) (*entity.Card, error) {
	var card entity.Card
	if err := c.do(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID), nil, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// LikeCard adds the signed-in user's like. Idempotent.
func (c *Client) LikeCard(ctx context.Context, cardID string) (*entity.Card, error) {
	var card entity.Card
	if err := c.do(ctx, http.MethodPut, "/cards/"+url.PathEscape(cardID)+"/likes", nil, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// UnlikeCard removes the signed-in user's like. Idempotent.
func (c *Client) UnlikeCard(ctx context.Context, cardID string) (*entity.Card, error) {
	var card entity.Card
	if err := c.do(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID)+"/likes", nil, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one request and decodes the enveloped response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(err, "decode response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode response data")
		}
	}

	return nil
}
