package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// GameService manages the catalog.
type GameService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGameService(db *sql.DB, m repomanager.RepositoryManager) *GameService {
	return &GameService{db: db, repomanager: m}
}

func (s *GameService) List(ctx context.Context) ([]*models.Game, error) {
	return s.repomanager.Games(s.db).List(ctx)
}

// Get returns one game. Ids that are not UUIDs cannot exist and yield
// common.ErrorNotFound.
func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	if !isValidID(id) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Games(s.db).Get(ctx, id)
}

// Create validates fields (all required) and stores a new game.
func (s *GameService) Create(ctx context.Context, fields models.GamePatch) (*models.Game, error) {
	if err := validateGame(&fields, true); err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:          uuid.NewString(),
		Name:        *fields.Name,
		Price:       *fields.Price,
		Space:       *fields.Space,
		Description: *fields.Description,
		Genre:       *fields.Genre,
	}

	return s.repomanager.Games(s.db).Create(ctx, game)
}

// Update applies a partial update. An empty patch returns the stored game.
func (s *GameService) Update(ctx context.Context, id string, patch models.GamePatch) (*models.Game, error) {
	if !isValidID(id) {
		return nil, common.ErrorNotFound
	}
	if err := validateGame(&patch, false); err != nil {
		return nil, err
	}

	repo := s.repomanager.Games(s.db)
	if patch.IsEmpty() {
		return repo.Get(ctx, id)
	}
	return repo.Update(ctx, id, patch)
}

// Delete removes a game and returns it.
func (s *GameService) Delete(ctx context.Context, id string) (*models.Game, error) {
	if !isValidID(id) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Games(s.db).Delete(ctx, id)
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
