package auth

import "context"

type principalContextKey struct{}

// WithPrincipal attaches the authenticated principal to the request
// context; the middleware calls this after token validation.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext returns the principal set by the middleware.
// The second return is false on requests that bypassed authentication,
// such as probes or when auth is disabled.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}
