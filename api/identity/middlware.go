package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ilhamhanifan/maze-solver/infrastruture/token"
	"github.com/ilhamhanifan/maze-solver/service/i"
)

const (
	// ContextClientClaims is the key used to store client claims in the Gin context.
	ContextClientClaims = "clientClaims"

	// ScopeWriteMazes allows creating mazes.
	ScopeWriteMazes = "mazes:write"
)

// Authoriz rejects requests without a valid bearer token granting scope.
func Authoriz(ts i.Tokenizer, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !token.HasScope(claims, scope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		// Attach client claims to the request context for further use.
		c.Set(ContextClientClaims, claims)
		c.Next()
	}
}
