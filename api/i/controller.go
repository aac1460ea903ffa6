package i

import "github.com/gin-gonic/gin"

// Controller registers a resource's routes on the router's groups.
type Controller interface {
	// RegisterPublic adds routes that need no token.
	RegisterPublic(*gin.RouterGroup)
	// RegisterProtected adds routes behind the authorization middleware.
	RegisterProtected(*gin.RouterGroup)
}
