package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/dbx"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/games"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/users"
)

// fakeUsersRepo enforces email uniqueness atomically, like the unique index.
type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User

	getErr    error
	createErr error
	creates   int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrAccountExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeGamesRepo struct {
	mu    sync.Mutex
	items map[string]*models.Game
	order []string

	listErr error
	calls   []string
}

func newFakeGamesRepo() *fakeGamesRepo {
	return &fakeGamesRepo{items: map[string]*models.Game{}}
}

func (f *fakeGamesRepo) List(context.Context) ([]*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "List")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Game, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeGamesRepo) Get(_ context.Context, id string) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Get")
	g, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return g, nil
}

func (f *fakeGamesRepo) Create(_ context.Context, g *models.Game) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Create")
	f.items[g.ID] = g
	f.order = append(f.order, g.ID)
	return g, nil
}

func (f *fakeGamesRepo) Update(_ context.Context, id string, p models.GamePatch) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Update")
	g, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	if p.Space != nil {
		g.Space = *p.Space
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Genre != nil {
		g.Genre = *p.Genre
	}
	return g, nil
}

func (f *fakeGamesRepo) Delete(_ context.Context, id string) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Delete")
	g, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.items, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return g, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGamesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Games(dbx.DBTX) games.Repository              { return m.g }
