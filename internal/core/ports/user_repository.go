package ports

import (
	"context"

	"github.com/elevare/platform-api/internal/core/domain"
)

// UserRepository is the persistence contract for the user aggregate. Save
// replaces the whole document; the store guarantees the replace is atomic with
// respect to concurrent saves of the same document (last write wins).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail looks a user up by lowercased email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
