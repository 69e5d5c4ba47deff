package routes

import (
	"github.com/gofiber/fiber/v2"

	"go_doc_rpc/handlers"
)

func RegisterDocumentRoutes(app *fiber.App, handler *handlers.DocHandler) {
	documents := app.Group("/api/documents")
	documents.Post("/", handler.InsertDocument)
	documents.Get("/", handler.GetDocument)

	app.Get("/api/collections/:name", handler.ListCollection)
}
