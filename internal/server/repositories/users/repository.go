package users

import (
	"context"

	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
)

// Repository is the credential store. Create must reject a duplicate email
// atomically with common.ErrAccountExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
