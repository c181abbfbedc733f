package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/backend/internal/types"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-auth-token"

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// TokenValidator verifies a session token and returns the embedded identity.
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// Auth gates a route on a valid session token. Missing and invalid tokens
// both answer 401.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				types.NewErrorResponse(types.ErrorItem{Msg: "No Token"}))
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				types.NewErrorResponse(types.ErrorItem{Msg: "Invalid Token"}))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
