package ctxutil

import "context"

type ctxKey string

const (
	accessTokenKey ctxKey = "access_token"
	requestIDKey   ctxKey = "request_id"
)

// WithAccessToken stores the caller's access token in the context.
// The token is forwarded to the directory services as is.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessTokenFromCtx extracts the access token from the context.
// Returns "" and false if the value is missing or empty.
func AccessTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
