package routes

import (
	"lotes_backoffice/internal/adapter/http/handlers"
	"lotes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authUseCase usecase.IAuthUseCase) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", handlers.RequireSession(authUseCase), authHandler.Me)
	}
}
