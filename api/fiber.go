package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sunthewhat/easy-cred-api/api/handler"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/api/routes"
	"github.com/sunthewhat/easy-cred-api/common"
)

// uploads carry base64 backgrounds up to 15MB
const bodyLimit = 25 * 1024 * 1024

func NewApp(deps routes.Dependencies) *fiber.App {
	cfg := fiber.Config{
		AppName:       "easycred api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     bodyLimit,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors(common.Config.Cors))

	routes.Init(app, deps)

	app.Use(handler.HandleNotFound)

	return app
}

func InitFiber(deps routes.Dependencies) {
	app := NewApp(deps)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
