package context

import (
	"context"
)

type contextKey string

// RequestIDKey holds the request id injected by the transport middleware
const RequestIDKey contextKey = "request_id"

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
