package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

// runAuthRouter - вход, регистрация и проверка сессии доступны без токена.
func runAuthRouter(ui *echo.Group, authCtrl *controllers.AuthController) {
	authGroup := ui.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/session", authCtrl.Session)
	}
}
