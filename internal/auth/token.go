// Package auth issues and validates bearer tokens and resolves the
// calling user for gRPC requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
)

// DefaultTokenTTL is used when Config.TokenTTL is zero
const DefaultTokenTTL = time.Hour

const minSecretLength = 16

// Claims carried by compendium access tokens
type Claims struct {
	jwt.RegisteredClaims
	DisplayName string `json:"name,omitempty"`
}

// Config is shared by Issuer and Validator
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TokenTTL time.Duration
	Clock    clock.Clock
}

// Validate validates the config and fills defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Secret) == 0 {
		vb.RequiredField("secret")
	} else if len(c.Secret) < minSecretLength {
		vb.Fieldf("secret", "must be at least %d bytes", minSecretLength)
	}
	errors.ValidateRequired("issuer", c.Issuer, vb)
	errors.ValidateRequired("audience", c.Audience, vb)
	if c.TokenTTL < 0 {
		vb.Field("token_ttl", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// Token is a signed access token
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Issuer signs HS256 access tokens
type Issuer struct {
	cfg Config
}

// NewIssuer creates an Issuer
func NewIssuer(cfg *Config) (*Issuer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid auth config")
	}
	return &Issuer{cfg: *cfg}, nil
}

// Issue signs a token whose subject is userID
func (i *Issuer) Issue(userID, displayName string) (*Token, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user id is required")
	}

	now := i.cfg.Clock.Now().UTC()
	expiresAt := now.Add(i.cfg.TokenTTL)
	jti := uuid.NewString()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        jti,
		},
		DisplayName: displayName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(i.cfg.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &Token{Value: signed, ID: jti, ExpiresAt: expiresAt}, nil
}

// Validator checks signature, issuer, audience and expiry
type Validator struct {
	cfg Config
}

// NewValidator creates a Validator
func NewValidator(cfg *Config) (*Validator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid auth config")
	}
	return &Validator{cfg: *cfg}, nil
}

// Validate parses the token and returns its claims. Every failure is
// UNAUTHENTICATED.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, v.keyFunc,
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.cfg.Clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnauthenticated, "invalid access token")
	}
	if claims.Subject == "" {
		return nil, errors.Unauthenticated("token has no subject")
	}
	return &claims, nil
}

func (v *Validator) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Unauthenticated("unexpected signing method")
	}
	return v.cfg.Secret, nil
}
