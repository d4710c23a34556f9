package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("redis", "is required")
	ve.AddFieldError("jwt_secret", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: jwt_secret: is required; redis: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
	s.Equal("jwt_secret,redis", err.Meta["fields"])
	s.Empty(errors.GetField(err))
	s.Equal([]string{"jwt_secret", "redis"}, ve.FieldNames())
}

func (s *ValidationTestSuite) TestSingleFailureSetsField() {
	err := errors.NewValidationBuilder().RequiredField("monster_repo").Build()

	s.Equal("monster_repo", errors.GetField(err))
	s.Equal(errors.Kind(""), errors.GetKind(err))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("port", "must be between %d and %d", 1, 65535).
		RequiredField("client")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("port", 70000, 1, 65535, vb)
	errors.ValidateRange("pool", 10, 1, 100, vb)

	err := vb.Build()
	s.Require().Error(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["port"][0], "must be between 1 and 65535")
	s.NotContains(validationErrors, "pool")
}
