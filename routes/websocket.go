package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"go_doc_rpc/handlers"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *handlers.WSHandler) {
	ws := app.Group("/ws")

	ws.Use("/documents", wsHandler.WebSocketUpgrade)
	ws.Get("/documents", websocket.New(wsHandler.HandleDocumentEvents))
}
