package service

import (
	"context"

	"silentblock/internal/domain/entity"
	"silentblock/internal/infrastructure/supabase"
)

// AuthService defines the interface for resolving a bearer credential into
// an authenticated principal.
type AuthService interface {
	// Authenticate resolves the raw Authorization header value into a Principal.
	Authenticate(ctx context.Context, authorizationHeader string) (*entity.Principal, error)
}

// TokenIntrospector is the identity-provider seam used by AuthService.
type TokenIntrospector interface {
	GetUser(ctx context.Context, token string) (*supabase.User, error)
}
