package handlers

import (
	"go_doc_rpc/services"

	"github.com/gofiber/fiber/v2"
	"github.com/ory/herodot"
)

type HelloHandler struct {
	greetingService *services.GreetingService
}

func NewHelloHandler(greetingService *services.GreetingService) *HelloHandler {
	return &HelloHandler{greetingService: greetingService}
}

func (h *HelloHandler) SayHello(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, herodot.ErrBadRequest.WithReason("Invalid request body"))
		}
	}
	return c.JSON(fiber.Map{"message": h.greetingService.Greet(req.Name)})
}
