package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pocketmoney/pocket_money_app/internal/utils"
)

// ParentSubject is the JWT subject claimed by parent session tokens.
const ParentSubject = "parent"

// ParentAuthMiddleware validates the parent session token issued after a
// successful parental password check. The token is app-level gating, not a
// security boundary; it just keeps the admin surface behind the shared secret.
func ParentAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			logger.Warn("Invalid parent token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject != ParentSubject {
			logger.Warn("Token subject is not a parent session", "subject", claims.Subject)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), parentCtxKey, true)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// IsParentSession reports whether the request passed the parent gate.
func IsParentSession(ctx context.Context) bool {
	ok, _ := ctx.Value(parentCtxKey).(bool)
	return ok
}
