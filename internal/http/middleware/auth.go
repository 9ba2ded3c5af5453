package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/smileline/internal/auth"
	"github.com/roguepikachu/smileline/pkg"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// ClaimsKey is where RequireRole stores the validated claims on the gin context.
const ClaimsKey = "auth.claims"

// RequireRole accepts only bearer tokens carrying role.
func RequireRole(v auth.TokenValidator, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := bearerToken(c.GetHeader("Authorization"))
		claims, err := v.Validate(token)
		if err != nil {
			code := "unauthorized"
			if errors.Is(err, auth.ErrMissingToken) {
				code = "missing_token"
			}
			logger.Debug(ctx, "admin token rejected: %v", err)
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.NewError(code, "authentication required"))
			return
		}
		if !claims.HasRole(role) {
			logger.WithField(ctx, "subject", claims.Subject).Warn("admin access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, pkg.NewError("forbidden", auth.ErrForbidden.Error()))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
