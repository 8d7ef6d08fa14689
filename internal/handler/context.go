package handlers

import "context"

type contextKey string

const authorIDKey contextKey = "authorID"

// WithAuthorID returns a copy of ctx carrying the authenticated author id.
func WithAuthorID(ctx context.Context, authorID string) context.Context {
	return context.WithValue(ctx, authorIDKey, authorID)
}

func AuthorIDFromContext(ctx context.Context) (string, bool) {
	authorID, ok := ctx.Value(authorIDKey).(string)
	return authorID, ok && authorID != ""
}
