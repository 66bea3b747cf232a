// Package games provides the PostgreSQL-backed repository for catalog games.
package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/dbx"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
)

const gameColumns = `id, name, price, space, description, genre, created_at, updated_at`

// PostgresRepository implements game storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*models.Game, error) {
	var g models.Game
	if err := s.Scan(&g.ID, &g.Name, &g.Price, &g.Space, &g.Description, &g.Genre, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// oneRow scans a single-row result, mapping sql.ErrNoRows to ErrorNotFound.
func oneRow(row *sql.Row) (*models.Game, error) {
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

// List returns every game ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select games: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a single game.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return oneRow(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts game and fills in the server-side timestamps.
func (r *PostgresRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	query := `
		INSERT INTO games (id, name, price, space, description, genre)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		game.ID, game.Name, game.Price, game.Space, game.Description, game.Genre).
		Scan(&game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return game, nil
}

// Update applies the non-nil fields of patch in a single statement and
// returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.GamePatch) (*models.Game, error) {
	query := `
		UPDATE games SET
			name        = COALESCE($2, name),
			price       = COALESCE($3, price),
			space       = COALESCE($4, space),
			description = COALESCE($5, description),
			genre       = COALESCE($6, genre),
			updated_at  = now()
		WHERE id = $1
		RETURNING ` + gameColumns

	return oneRow(r.db.QueryRowContext(ctx, query,
		id, patch.Name, patch.Price, patch.Space, patch.Description, patch.Genre))
}

// Delete removes the game and returns what was stored.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Game, error) {
	query := `DELETE FROM games WHERE id = $1 RETURNING ` + gameColumns
	return oneRow(r.db.QueryRowContext(ctx, query, id))
}
