package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid email or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok"}`))
	})

	token, err := c.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	_, err = c.Login(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Message)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"u1","name":"A","email":"a@x.com","created_at":"2026-01-01T00:00:00Z"}`))
	})

	u, err := c.Register(context.Background(), "A", "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestGames_SendsTokenVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"g1","name":"Hades","price":1.5,"space":2}]`))
		case http.MethodPatch:
			assert.Equal(t, "/games/g1", r.URL.Path)
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, map[string]any{"price": 9.5}, in)
			_, _ = w.Write([]byte(`{"id":"g1","price":9.5}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	})
	ctx := context.Background()

	games, err := c.ListGames(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Hades", games[0].Name)

	g, err := c.UpdateGame(ctx, "tok", "g1", GameFields{Price: ptr(9.5)})
	require.NoError(t, err)
	assert.Equal(t, 9.5, g.Price)

	_, err = c.DeleteGame(ctx, "tok", "g1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGame_BadRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation error: genre is required"}`))
	})

	_, err := c.CreateGame(context.Background(), "tok", GameFields{Name: ptr("x")})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "genre is required")
}

func TestStatus(t *testing.T) {
	var down atomic.Bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})

	assert.NoError(t, c.Status(context.Background()))
	down.Store(true)
	assert.ErrorIs(t, c.Status(context.Background()), ErrUnavailable)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.ListGames(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
}
