package handlers

import (
	"context"
	"slices"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// DocumentEventSource streams document events until ctx is cancelled.
type DocumentEventSource interface {
	SubscribeDocumentEvents(ctx context.Context) (<-chan *models.DocumentEvent, error)
}

type WSHandler struct {
	events DocumentEventSource
}

func NewWSHandler(events DocumentEventSource) *WSHandler {
	return &WSHandler{events: events}
}

func (h *WSHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "Not a websocket request"})
}

// HandleDocumentEvents forwards insert events, optionally only those labelled with the
// ?collection= query parameter.
func (h *WSHandler) HandleDocumentEvents(c *websocket.Conn) {
	collection := c.Query("collection")
	logging.Logger.Info("websocket connected", "collection", collection, "ip", c.IP())

	// cancelled when the connection handler returns
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventChan, err := h.events.SubscribeDocumentEvents(ctx)
	if err != nil {
		logging.Logger.Error("fail SubscribeDocumentEvents", "error", err)
		_ = c.WriteJSON(fiber.Map{"error": "Failed to subscribe"})
		return
	}
	if err := c.WriteJSON(fiber.Map{"type": "connected", "collection": collection}); err != nil {
		return
	}

	// reader loop only notices the client closing the socket
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if collection != "" && !slices.Contains(event.Collections, collection) {
				continue
			}
			if err := c.WriteJSON(event); err != nil {
				logging.Logger.Error("fail sending websocket message", "error", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
