// Package api is a typed HTTP client for the game catalog server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Status calls GET / and returns nil when the server and its store are up.
func (c *Client) Status(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", "", nil, nil)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out User
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login returns a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) ListGames(ctx context.Context, token string) ([]Game, error) {
	var out []Game
	if err := c.do(ctx, http.MethodGet, "/games", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGame(ctx context.Context, token string, f GameFields) (*Game, error) {
	var out Game
	if err := c.do(ctx, http.MethodPost, "/games", token, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGame(ctx context.Context, token, id string, f GameFields) (*Game, error) {
	var out Game
	if err := c.do(ctx, http.MethodPatch, "/games/"+url.PathEscape(id), token, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGame(ctx context.Context, token, id string) (*Game, error) {
	var out Game
	if err := c.do(ctx, http.MethodDelete, "/games/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload)

	e := &Error{Status: resp.StatusCode, Message: payload.Error}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		e.kind = ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		e.kind = ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		e.kind = ErrBadRequest
	case resp.StatusCode >= http.StatusInternalServerError:
		e.kind = ErrUnavailable
	default:
		e.kind = errors.New(http.StatusText(resp.StatusCode))
	}
	return e
}
