package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// SessionConfig defines how session tokens are signed
type SessionConfig struct {
	Secret string
	MaxAge time.Duration
	Issuer string
}

// SessionClaims is the signed payload of the session cookie
type SessionClaims struct {
	AccessToken string `json:"accessToken,omitempty"`
	UserID      string `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies session tokens
type SessionCodec struct {
	config SessionConfig
	now    func() time.Time
}

// NewSessionCodec creates a new session codec
func NewSessionCodec(config SessionConfig) *SessionCodec {
	return &SessionCodec{
		config: config,
		now:    time.Now,
	}
}

// MaxAge returns the lifetime of an issued token
func (c *SessionCodec) MaxAge() time.Duration {
	return c.config.MaxAge
}

// Encode signs the claims, stamping issuer, subject and lifetime
func (c *SessionCodec) Encode(claims SessionClaims) (string, error) {
	now := c.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    c.config.Issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.config.MaxAge)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(c.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies a token string and returns its claims
func (c *SessionCodec) Decode(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithTimeFunc(c.now)}
	if c.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.config.Issuer))
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.config.Secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
