package ports

import "github.com/99minutos/identity-service/internal/core/domain"

// TokenIssuer mints session tokens. Issue cannot fail: signing keys are
// validated when the issuer is built.
type TokenIssuer interface {
	Issue(user *domain.User, roles []string) string
}

// TokenParser decodes and verifies session tokens.
type TokenParser interface {
	Parse(token string) (*domain.SessionClaims, error)
}
