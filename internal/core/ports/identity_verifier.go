package ports

import (
	"context"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// IdentityVerifier validates a token issued by an external identity provider.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*domain.ExternalIdentity, error)
}
