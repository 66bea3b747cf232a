package games

import (
	"context"

	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
)

// Repository is the catalog document store: find, insert, update by id and
// delete by id. Missing ids yield common.ErrorNotFound.
type Repository interface {
	List(ctx context.Context) ([]*models.Game, error)
	Get(ctx context.Context, id string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	Update(ctx context.Context, id string, patch models.GamePatch) (*models.Game, error)
	Delete(ctx context.Context, id string) (*models.Game, error)
}
