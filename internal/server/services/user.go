// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/server/auth"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// dummyPassword is hashed once and used to burn the same bcrypt time on
// logins for unknown emails.
const dummyPassword = "gamecatalog-dummy-password"

// UserService provides authentication-related operations:
// - Register: create users with a hashed password
// - Login: verify credentials and mint an access token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenManager

	mu        sync.Mutex
	dummyHash string
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.PasswordHasher, t *auth.TokenManager) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		tokens:      t,
	}
}

// NormalizeEmail trims and lower-cases an email so lookups and the unique
// index agree on identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user. An already registered email yields
// common.ErrAccountExists, both when detected by the lookup and when a
// concurrent registration wins the race at the unique index.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", common.ErrorValidation, strings.Join(missing, ", "))
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrAccountExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAccountExists) {
			return nil, common.ErrAccountExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// emails and wrong passwords both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, common.ErrInvalidCredentials
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return "", nil, fmt.Errorf("error looking up user: %w", err)
		}
		if _, err := s.hasher.Verify(ctx, password, s.getDummyHash(ctx)); err != nil {
			return "", nil, err
		}
		return "", nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("error issuing token: %w", err)
	}

	return token, user, nil
}

func (s *UserService) getDummyHash(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dummyHash == "" {
		if h, err := s.hasher.Hash(ctx, dummyPassword); err == nil {
			s.dummyHash = h
		}
	}
	return s.dummyHash
}
