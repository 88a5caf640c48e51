// resolver.go - Resolves bearer tokens to stored users
//
// ResolveRequired and ResolveOptional share one decoding path and differ only
// in what they do with a failure: the first returns ErrUnauthorized, the
// second returns no user.

package session

import (
	"context"
	"strings"

	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// UserLookup finds a user by username, returning (nil, nil) when absent.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Resolver struct {
	tokens TokenValidator
	users  UserLookup
}

func NewResolver(tokens TokenValidator, users UserLookup) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// ResolveRequired returns the token's user or an ErrUnauthorized AppError.
func (r *Resolver) ResolveRequired(ctx context.Context, token string) (*models.User, error) {
	user, err := r.resolve(ctx, token)
	if err != nil {
		return nil, domain.NewUnauthorizedError("Could not validate credentials")
	}
	return user, nil
}

// ResolveOptional returns the token's user, or nil for any failure.
func (r *Resolver) ResolveOptional(ctx context.Context, token string) *models.User {
	user, err := r.resolve(ctx, token)
	if err != nil {
		return nil
	}
	return user
}

func (r *Resolver) resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := r.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	username, err := claims.GetSubject()
	if err != nil || username == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Disabled {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is case-insensitive; anything else yields "".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
