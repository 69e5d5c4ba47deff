package handlers

import (
	"go_doc_rpc/services"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	docService *services.DocumentService
}

func NewHealthHandler(docService *services.DocumentService) *HealthHandler {
	return &HealthHandler{docService: docService}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	st := h.docService.Status(c.UserContext())
	if st.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(st)
	}
	return c.JSON(st)
}
