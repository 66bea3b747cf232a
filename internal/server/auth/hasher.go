package auth

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies passwords.
//
// Verify reports a mismatch as (false, nil); an error means the check could
// not run at all (e.g. the context was cancelled while waiting for a worker).
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// BcryptHasher is a PasswordHasher backed by bcrypt. At most `workers`
// hash or verify calls run at once; the rest wait for a free slot.
type BcryptHasher struct {
	cost  int
	slots chan struct{}
}

func NewBcryptHasher(cost, workers int) *BcryptHasher {
	if workers < 1 {
		workers = 1
	}
	return &BcryptHasher{cost: cost, slots: make(chan struct{}, workers)}
}

func (h *BcryptHasher) acquire(ctx context.Context) error {
	select {
	case h.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *BcryptHasher) release() {
	<-h.slots
}

// Hash returns a salted bcrypt digest. Every call draws a fresh salt.
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", common.ErrorValidation, maxPasswordBytes)
	}

	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compares in constant time. A malformed digest is a mismatch.
func (h *BcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := h.acquire(ctx); err != nil {
		return false, err
	}
	defer h.release()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
