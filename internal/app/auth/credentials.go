package auth

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// CredentialsProvider is the email and password strategy
type CredentialsProvider struct {
	backend  *BackendClient
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCredentialsProvider creates a CredentialsProvider
func NewCredentialsProvider(backend *BackendClient, logger zerolog.Logger) *CredentialsProvider {
	return &CredentialsProvider{
		backend:  backend,
		validate: validation.New(),
		logger:   logger,
	}
}

// Authorize returns the backend's user for valid credentials and nil
// otherwise. A malformed input, a rejection and a transport failure all
// yield nil; none of them is surfaced as an error.
func (p *CredentialsProvider) Authorize(ctx context.Context, creds Credentials) *User {
	if err := p.validate.Struct(creds); err != nil {
		p.logger.Debug().Interface("fields", validation.Fields(err)).Msg("Credentials failed validation")
		return nil
	}

	user, err := p.backend.SignIn(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrBackendRejected) {
			p.logger.Debug().Err(err).Msg("Credentials rejected")
		} else {
			p.logger.Error().Err(err).Msg("Credentials sign-in failed")
		}
		return nil
	}
	return user
}
