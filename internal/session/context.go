package session

import "context"

// userIDContextKey is the context key for the authenticated actor.
type userIDContextKey struct{}

// WithUserID stores the acting account id in context.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the acting account id, 0 when anonymous.
func UserIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(userIDContextKey{}).(int)
	return id
}
