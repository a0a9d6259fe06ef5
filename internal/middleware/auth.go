package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// Claims carries the authenticated user identity. Tokens are issued by the
// external auth provider; this middleware only verifies and unpacks them.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const contextUserIDKey = "auth_user_id"

// RequireAuth validates the bearer token and stores the user id in the
// request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid token"})
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || claims.UserID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "token carries no user identity"})
			return
		}

		ctx.Set(contextUserIDKey, claims.UserID)
		ctx.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by RequireAuth.
func UserIDFromContext(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
