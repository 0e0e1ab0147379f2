package service

import (
	"context"
	"fmt"
	"strings"

	"silentblock/internal/domain/entity"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/rs/zerolog"
)

type authService struct {
	introspector TokenIntrospector
	log          zerolog.Logger
}

// NewAuthService creates a new instance of AuthService implementation.
func NewAuthService(introspector TokenIntrospector, log zerolog.Logger) AuthService {
	return &authService{introspector: introspector, log: log}
}

// Authenticate resolves the raw Authorization header value into a Principal.
// The scheme segment is not inspected; only the presence of a token after the
// first space matters. Provider failures are terminal, no retries.
func (s *authService) Authenticate(ctx context.Context, authorizationHeader string) (*entity.Principal, error) {
	if authorizationHeader == "" {
		return nil, appErrors.ErrMissingAuth
	}

	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return nil, appErrors.ErrMalformedAuth
	}
	token := parts[1]

	user, err := s.introspector.GetUser(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token introspection failed")
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidToken, err)
	}
	if user == nil || user.ID == "" {
		return nil, fmt.Errorf("%w: user not found", appErrors.ErrInvalidToken)
	}

	return &entity.Principal{ID: user.ID, Email: user.Email}, nil
}
