package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "monster not found",
			expected: "NOT_FOUND: monster not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("monster not found").WithMeta("name", "Gnoll")
	wrapped := errors.Wrap(base, "failed to load monster")

	s.True(errors.IsNotFound(wrapped))
	s.Equal("Gnoll", wrapped.Meta["name"])
	s.Contains(wrapped.Error(), "failed to load monster")
	s.Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrapf(fmt.Errorf("boom"), "redis %s", "down")

	s.True(errors.IsInternal(wrapped))
	s.Equal("redis down", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.InvalidArgument("bad").WithMeta("field", "speed")
	wrapped := errors.WrapWithCode(base, errors.CodeFailedPrecondition, "cannot save")

	s.True(errors.HasCode(wrapped, errors.CodeFailedPrecondition))
	s.Equal("speed", wrapped.Meta["field"])

	wrapped.Meta["field"] = "changed"
	s.Equal("speed", base.Meta["field"])
}

func (s *ErrorsTestSuite) TestIsComparesCodes() {
	err := errors.NotFoundf("monster %s not found", "Gnoll")

	s.True(errors.Is(err, errors.NotFound("other")))
	s.False(errors.Is(err, errors.InvalidArgument("other")))
}

func (s *ErrorsTestSuite) TestGetCodeForPlainErrors() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestContextErrors() {
	s.Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("redis get: %w", context.DeadlineExceeded)))

	wrapped := errors.Wrap(context.Canceled, "failed to load monster")
	s.Equal(errors.CodeCanceled, wrapped.Code)
	s.ErrorIs(wrapped, context.Canceled)

	st, ok := status.FromError(errors.ToGRPCError(context.DeadlineExceeded))
	s.Require().True(ok)
	s.Equal(codes.DeadlineExceeded, st.Code())
}

func (s *ErrorsTestSuite) TestKinds() {
	formatErr := errors.FormatErrorf("notation", "invalid dice notation %q", "3x6")
	s.True(errors.IsFormatError(formatErr))
	s.True(errors.IsInvalidArgument(formatErr))
	s.Equal("notation", errors.GetField(formatErr))

	rangeErr := errors.RangeErrorf("Str", "Str must be between %d and %d", 1, 30)
	s.True(errors.IsRangeError(rangeErr))
	s.True(errors.IsOutOfRange(rangeErr))
	s.Equal("Str", errors.GetField(rangeErr))

	structuralErr := errors.StructuralErrorf("speed", "Speed must be a non-negative multiple of 5")
	s.True(errors.IsStructuralError(structuralErr))
	s.False(errors.IsRangeError(structuralErr))

	wrapped := errors.Wrap(rangeErr, "cannot build monster")
	s.True(errors.IsRangeError(wrapped))

	s.Equal(errors.Kind(""), errors.GetKind(errors.NotFound("missing")))
	s.Empty(errors.GetField(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.RangeErrorf("Dex", "Dex must be between 1 and 30")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.OutOfRange, st.Code())
	s.Equal("Dex must be between 1 and 30", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsOutOfRange(back))
	s.True(errors.IsRangeError(back))
	s.Equal("Dex", errors.GetField(back))
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassThrough() {
	s.Nil(errors.ToGRPCError(nil))

	existing := status.Error(codes.NotFound, "gone")
	s.Equal(existing, errors.ToGRPCError(existing))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestCodeMapping() {
	testCases := []struct {
		code     errors.Code
		grpcCode codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodePermissionDenied, codes.PermissionDenied},
		{errors.CodeUnauthenticated, codes.Unauthenticated},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.CodeCanceled, codes.Canceled},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.grpcCode, tc.code.GRPCCode())
			back := errors.FromGRPCError(status.Error(tc.grpcCode, "x"))
			s.Equal(tc.code, errors.GetCode(back))
		})
	}

	s.Equal(codes.Unknown, errors.Code("BOGUS").GRPCCode())
	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.DataLoss, "x"))))
}
