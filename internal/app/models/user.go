package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Email           string     `json:"email" db:"email"`
	Name            string     `json:"name" db:"name"`
	Image           *string    `json:"image,omitempty" db:"image"`
	Password        *string    `json:"-" db:"password"` // bcrypt hash, nil for provider-only users
	Role            Role       `json:"role" db:"role"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty" db:"email_verified_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Account links a user to a federated identity, based on the 'accounts' table
type Account struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	Type              string    `json:"type" db:"type"`
	Provider          string    `json:"provider" db:"provider"`
	ProviderAccountID string    `json:"providerAccountId" db:"provider_account_id"`
	RefreshToken      *string   `json:"-" db:"refresh_token"`
	AccessToken       *string   `json:"-" db:"access_token"`
	ExpiresAt         *int64    `json:"expiresAt,omitempty" db:"expires_at"`
	TokenType         *string   `json:"tokenType,omitempty" db:"token_type"`
	Scope             *string   `json:"scope,omitempty" db:"scope"`
	IDToken           *string   `json:"-" db:"id_token"`
}
