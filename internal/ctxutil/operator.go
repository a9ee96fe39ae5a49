// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// OperatorKey is the context key for the operator identity.
// Exported so it can be used consistently across packages.
type OperatorKey struct{}

// WithOperator returns a context with the operator embedded.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, OperatorKey{}, operator)
}

// OperatorFromContext returns the operator from context, or empty string if not set.
func OperatorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(OperatorKey{}).(string); ok {
		return v
	}
	return ""
}
