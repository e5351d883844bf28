package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/service"
)

const claimsKey = "auth_claims"

// Auth parses a Bearer session token and aborts with a structured 401 when
// it is missing, malformed, or expired. Tokens are self-verifying; there is
// no server-side session state to consult.
func Auth(tokens service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(ctx, "missing bearer token")
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			abortUnauthorized(ctx, "invalid or expired session token")
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin aborts unless the verified token carries the admin flag.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFromContext(ctx)
		if !ok || !claims.IsAdmin {
			abortUnauthorized(ctx, "admin privilege required")
			return
		}
		ctx.Next()
	}
}

// ClaimsFromContext returns the verified claims set by Auth.
func ClaimsFromContext(ctx *gin.Context) (*service.Claims, bool) {
	value, exists := ctx.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok
}

func abortUnauthorized(ctx *gin.Context, msg string) {
	e := apperr.Unauthorized(msg)
	ctx.AbortWithStatusJSON(e.HTTPStatus(), dto.NewErrorResponse(string(e.Code), e.Message))
}
