package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Services that never require a token
var exemptServices = []string{
	"/grpc.health.v1.Health/",
	"/grpc.reflection.v1.ServerReflection/",
	"/grpc.reflection.v1alpha.ServerReflection/",
}

// AnonymousPolicy decides whether a method may run without a token
type AnonymousPolicy func(fullMethod string) bool

// DenyAnonymous requires a token for every method
func DenyAnonymous(string) bool { return false }

// AllowMethods permits anonymous calls to the listed full method names
func AllowMethods(methods ...string) AnonymousPolicy {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}
	return func(fullMethod string) bool {
		_, ok := allowed[fullMethod]
		return ok
	}
}

// NewAuthFunc resolves the bearer token into a user id stored on the
// context. Missing tokens are accepted only where anonymous allows.
func NewAuthFunc(v *Validator, anonymous AnonymousPolicy) grpcauth.AuthFunc {
	if anonymous == nil {
		anonymous = DenyAnonymous
	}
	return func(ctx context.Context) (context.Context, error) {
		method, _ := grpc.Method(ctx)

		token, err := grpcauth.AuthFromMD(ctx, "bearer")
		if err != nil {
			if anonymous(method) {
				return ctx, nil
			}
			return nil, err
		}

		claims, err := v.Validate(token)
		if err != nil {
			slog.WarnContext(ctx, "rejected access token", "method", method, "error", err)
			return nil, status.Error(codes.Unauthenticated, "invalid access token")
		}
		return WithUserID(ctx, claims.Subject), nil
	}
}

// RequiresAuth matches every call outside the health and reflection
// services; use it with the selector interceptor.
func RequiresAuth() selector.Matcher {
	return selector.MatchFunc(func(_ context.Context, callMeta interceptors.CallMeta) bool {
		full := callMeta.FullMethod()
		for _, prefix := range exemptServices {
			if strings.HasPrefix(full, prefix) {
				return false
			}
		}
		return true
	})
}

// UnaryServerInterceptor chains the auth interceptor behind RequiresAuth
func UnaryServerInterceptor(v *Validator, anonymous AnonymousPolicy) grpc.UnaryServerInterceptor {
	return selector.UnaryServerInterceptor(grpcauth.UnaryServerInterceptor(NewAuthFunc(v, anonymous)), RequiresAuth())
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor
func StreamServerInterceptor(v *Validator, anonymous AnonymousPolicy) grpc.StreamServerInterceptor {
	return selector.StreamServerInterceptor(grpcauth.StreamServerInterceptor(NewAuthFunc(v, anonymous)), RequiresAuth())
}
