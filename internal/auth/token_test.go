package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/auth"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testConfig(clk *fakeClock) *auth.Config {
	return &auth.Config{
		Secret:   []byte("0123456789abcdef0123456789abcdef"),
		Issuer:   "rpg-compendium",
		Audience: "compendium-api",
		TokenTTL: time.Hour,
		Clock:    clk,
	}
}

type TokenTestSuite struct {
	suite.Suite
	clock     *fakeClock
	issuer    *auth.Issuer
	validator *auth.Validator
}

func (s *TokenTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}

	var err error
	s.issuer, err = auth.NewIssuer(testConfig(s.clock))
	s.Require().NoError(err)
	s.validator, err = auth.NewValidator(testConfig(s.clock))
	s.Require().NoError(err)
}

func (s *TokenTestSuite) TestIssueAndValidate() {
	token, err := s.issuer.Issue("user_123", "Volo")
	s.Require().NoError(err)
	s.Equal(s.clock.now.Add(time.Hour), token.ExpiresAt)
	s.NotEmpty(token.ID)

	claims, err := s.validator.Validate(token.Value)
	s.Require().NoError(err)
	s.Equal("user_123", claims.Subject)
	s.Equal("Volo", claims.DisplayName)
	s.Equal(token.ID, claims.ID)
}

func (s *TokenTestSuite) TestExpiredToken() {
	token, err := s.issuer.Issue("user_123", "")
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(2 * time.Hour)

	_, err = s.validator.Validate(token.Value)
	s.True(errors.IsUnauthenticated(err))
	s.ErrorIs(err, jwt.ErrTokenExpired)
}

func (s *TokenTestSuite) TestWrongSecret() {
	cfg := testConfig(s.clock)
	cfg.Secret = []byte("another-secret-of-enough-length")
	other, err := auth.NewIssuer(cfg)
	s.Require().NoError(err)

	token, err := other.Issue("user_123", "")
	s.Require().NoError(err)

	_, err = s.validator.Validate(token.Value)
	s.True(errors.IsUnauthenticated(err))
}

func (s *TokenTestSuite) TestWrongAudience() {
	cfg := testConfig(s.clock)
	cfg.Audience = "someone-else"
	other, err := auth.NewIssuer(cfg)
	s.Require().NoError(err)

	token, err := other.Issue("user_123", "")
	s.Require().NoError(err)

	_, err = s.validator.Validate(token.Value)
	s.ErrorIs(err, jwt.ErrTokenInvalidAudience)
}

func (s *TokenTestSuite) TestRejectsOtherAlgorithms() {
	claims := jwt.RegisteredClaims{
		Subject:   "user_123",
		Issuer:    "rpg-compendium",
		Audience:  jwt.ClaimStrings{"compendium-api"},
		ExpiresAt: jwt.NewNumericDate(s.clock.now.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.validator.Validate(unsigned)
	s.True(errors.IsUnauthenticated(err))
}

func (s *TokenTestSuite) TestMalformedToken() {
	_, err := s.validator.Validate("not-a-token")
	s.True(errors.IsUnauthenticated(err))
}

func (s *TokenTestSuite) TestIssueRequiresUser() {
	_, err := s.issuer.Issue("", "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *TokenTestSuite) TestConfigValidation() {
	_, err := auth.NewIssuer(&auth.Config{Secret: []byte("short")})
	s.Require().Error(err)
	s.Contains(err.Error(), "secret")
	s.Contains(err.Error(), "issuer")
	s.Contains(err.Error(), "audience")

	cfg := &auth.Config{Secret: []byte("0123456789abcdef"), Issuer: "i", Audience: "a"}
	s.Require().NoError(cfg.Validate())
	s.Equal(auth.DefaultTokenTTL, cfg.TokenTTL)
	s.NotNil(cfg.Clock)
}

func TestTokenTestSuite(t *testing.T) {
	suite.Run(t, new(TokenTestSuite))
}
