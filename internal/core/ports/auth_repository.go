package ports

import (
	"context"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// UserRepository defines persistence operations for local user accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create returns domain.ErrUserExists on a uniqueness violation.
	Create(ctx context.Context, user *domain.User) error
	GetRoles(ctx context.Context, user *domain.User) ([]string, error)
	// AddRole grants role to the user. Granting an owned role is a no-op.
	AddRole(ctx context.Context, userID, role string) error
}
