package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/riddhimajain08/productivity-api/internal/auth"
)

// PrincipalHeader carries the authenticated user id to downstream handlers.
// The middleware always overwrites it, so handlers behind the gate can trust
// its value.
const PrincipalHeader = "X-User-ID"

// BearerAuth guards protected routes. A request without credentials is
// rejected with 401; a request whose token fails verification is rejected
// with 403, with the reason kept to server-side logs.
func BearerAuth(tokens *auth.Tokens, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			raw := extractToken(ctx)
			if raw == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Warn("rejected bearer token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				return
			}

			ctx.Request.Header.Set(PrincipalHeader, claims.UserID)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
