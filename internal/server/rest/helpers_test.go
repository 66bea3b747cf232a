package rest

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/dbx"
	"github.com/dmitrijs2005/gamecatalog/internal/logging"
	"github.com/dmitrijs2005/gamecatalog/internal/server/auth"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/games"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/users"
	"github.com/dmitrijs2005/gamecatalog/internal/server/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

// memUsers is an in-memory credential store with an atomic unique email.
type memUsers struct {
	mu sync.Mutex
	m  map[string]*models.User
}

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[u.Email]; ok {
		return nil, common.ErrAccountExists
	}
	cp := *u
	r.m[u.Email] = &cp
	return u, nil
}

func (r *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.m[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type memManager struct{ u *memUsers }

func (m *memManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *memManager) Games(dbx.DBTX) games.Repository              { return nil }

type fakeGames struct {
	listOut []*models.Game
	out     *models.Game
	err     error
	panics  bool

	gotID    string
	gotPatch models.GamePatch
}

func (f *fakeGames) List(context.Context) ([]*models.Game, error) {
	if f.panics {
		panic("boom")
	}
	if f.listOut == nil && f.err == nil {
		return []*models.Game{}, nil
	}
	return f.listOut, f.err
}

func (f *fakeGames) Create(_ context.Context, p models.GamePatch) (*models.Game, error) {
	f.gotPatch = p
	return f.out, f.err
}

func (f *fakeGames) Update(_ context.Context, id string, p models.GamePatch) (*models.Game, error) {
	f.gotID, f.gotPatch = id, p
	return f.out, f.err
}

func (f *fakeGames) Delete(_ context.Context, id string) (*models.Game, error) {
	f.gotID = id
	return f.out, f.err
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

type testEnv struct {
	srv    *Server
	games  *fakeGames
	clock  *clock
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := auth.NewTokenManager([]byte("test-secret"), time.Hour, auth.WithClock(clk.Now))
	us := services.NewUserService(nil, &memManager{u: &memUsers{m: map[string]*models.User{}}},
		auth.NewBcryptHasher(bcrypt.MinCost, 2), tm)
	gs := &fakeGames{}

	return &testEnv{
		srv:    NewServer("127.0.0.1:0", nopLogger{}, us, gs, tm, fakePinger{}, time.Second),
		games:  gs,
		clock:  clk,
		tokens: tm,
	}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, token)
	}
	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func (e *testEnv) mustLogin(t *testing.T) string {
	t.Helper()
	e.do(http.MethodPost, "/auth/register", "", map[string]string{"name": "A", "email": "a@x.com", "password": "secret"})
	w := e.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}
