package httpapi

import (
	"context"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
)

type contextKey string

const sessionKeyContextKey contextKey = "draft_session_key"

func withSessionKey(ctx context.Context, key draft.SessionKey) context.Context {
	return context.WithValue(ctx, sessionKeyContextKey, key)
}

func sessionKeyFromContext(ctx context.Context) (draft.SessionKey, bool) {
	key, ok := ctx.Value(sessionKeyContextKey).(draft.SessionKey)
	return key, ok
}
