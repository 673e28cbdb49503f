package middleware

import (
	"leaguecatalog/pkg/messages"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenParser resolves an access token to its user id.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token.
// The user id is stored under "userId".
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": messages.InvalidToken})
			return
		}

		userID, err := parser.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": messages.InvalidToken})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
