package routes

import (
	"github.com/gofiber/fiber/v2"
	template_controller "github.com/sunthewhat/easy-cred-api/api/controllers/template"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
)

func SetupTemplateRoutes(router fiber.Router, deps Dependencies) {
	templateCtrl := template_controller.NewTemplateController(deps.Service)

	templateGroup := router.Group("template")

	templateGroup.Use(middleware.Jwt(deps.JWTSecret))

	templateGroup.Get("", templateCtrl.GetByOrganization)
	templateGroup.Post("", templateCtrl.Create)
	templateGroup.Post("preview", templateCtrl.PreviewDraft)
	templateGroup.Get(":id", templateCtrl.GetById)
	templateGroup.Get(":id/preview", templateCtrl.Preview)
	templateGroup.Get(":id/thumbnail", templateCtrl.Thumbnail)
}
