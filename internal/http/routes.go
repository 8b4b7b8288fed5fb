package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes reachable without a JWT, used when the
// service runs without auth enabled.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind the JWT middleware.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
