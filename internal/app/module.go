package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// public routes need no token, authed routes require a signed-in user and
// admin routes additionally require the admin role.
type Module interface {
	RegisterRoutes(public, authed, admin *gin.RouterGroup)
}
