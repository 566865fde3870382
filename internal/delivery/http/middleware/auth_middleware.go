package middleware

import (
	"net/http"
	"strings"

	"github.com/adamcc31/devconnect-api/internal/delivery/http/response"
	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user id before any
// protected handler runs. Verification is stateless: the token and the
// signing secret are all that is consulted, so rejected requests never
// touch the store.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// Authorization header first, legacy x-auth-token header second.
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			tokenString = c.GetHeader("x-auth-token")
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, authMessage(err), nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}

func authMessage(err error) string {
	authErr, ok := err.(*token.AuthError)
	if !ok {
		return "Invalid token"
	}
	switch authErr.Reason {
	case token.ReasonMissing:
		return "No token, authorization denied"
	case token.ReasonExpired:
		return "Token has expired"
	default:
		return "Token is not valid"
	}
}
