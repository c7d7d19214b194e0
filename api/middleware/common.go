package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Recover() fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: true})
}

func Cors(origins []*string) fiber.Handler {
	var allowed []string
	for _, o := range origins {
		if o != nil && *o != "" {
			allowed = append(allowed, *o)
		}
	}
	conf := cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	if len(allowed) > 0 {
		conf.AllowOrigins = strings.Join(allowed, ",")
	}
	return cors.New(conf)
}
