package routes

import (
	"github.com/gofiber/fiber/v2"

	"go_doc_rpc/handlers"
)

func RegisterHelloRoutes(app *fiber.App, handler *handlers.HelloHandler) {
	app.Post("/api/hello", handler.SayHello)
}

func RegisterHealthRoutes(app *fiber.App, handler *handlers.HealthHandler) {
	app.Get("/health", handler.Health)
}
