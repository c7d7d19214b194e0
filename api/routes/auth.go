package routes

import (
	"github.com/gofiber/fiber/v2"
	auth_controller "github.com/sunthewhat/easy-cred-api/api/controllers/auth"
)

func SetupAuthRoutes(router fiber.Router, deps Dependencies) {
	authCtrl := auth_controller.NewAuthController(deps.Organizations, deps.JWTSecret)

	authGroup := router.Group("auth")

	authGroup.Post("login", authCtrl.Login)
	authGroup.Post("register", authCtrl.Register)
}
