package handlers

import (
	"errors"
	"net/url"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/repository"
	"go_doc_rpc/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/ory/herodot"
)

type DocHandler struct {
	docService *services.DocumentService
}

func NewDocHandler(docService *services.DocumentService) *DocHandler {
	return &DocHandler{docService: docService}
}

// InsertDocument mirrors the InsertDocument RPC; the HTTP status is the response status_code.
func (h *DocHandler) InsertDocument(c *fiber.Ctx) error {
	var req models.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, herodot.ErrBadRequest.WithReason("Invalid request body"))
	}
	resp := h.docService.InsertDocument(c.UserContext(), &req)
	return c.Status(int(resp.StatusCode)).JSON(resp)
}

type documentView struct {
	URI         string            `json:"uri"`
	Data        json.RawMessage   `json:"data"`
	Collections []string          `json:"collections"`
	Metadata    map[string]string `json:"metadata"`
	InsertedAt  time.Time         `json:"inserted_at"`
	SizeBytes   int               `json:"size_bytes"`
}

func (h *DocHandler) GetDocument(c *fiber.Ctx) error {
	uri := c.Query("uri")
	doc, err := h.docService.GetDocument(c.UserContext(), uri)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrURIRequired):
		return writeError(c, herodot.ErrBadRequest.WithReason("The uri query parameter is required"))
	case errors.Is(err, repository.ErrDocumentNotFound):
		return writeError(c, herodot.ErrNotFound.WithReasonf("No document exists at %s", uri))
	case errors.Is(err, repository.ErrBackendUnavailable):
		return writeError(c, errServiceUnavailable.WithReason("Document store connection error"))
	default:
		logging.Logger.Error("fail GetDocument", "uri", uri, "error", err)
		return writeError(c, herodot.ErrInternalServerError.WithReason("Failed to read document"))
	}

	return c.JSON(documentView{
		URI:         doc.URI,
		Data:        json.RawMessage(doc.Raw),
		Collections: doc.Collections,
		Metadata:    doc.Metadata,
		InsertedAt:  doc.InsertedAt,
		SizeBytes:   doc.SizeBytes,
	})
}

func (h *DocHandler) ListCollection(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return writeError(c, herodot.ErrBadRequest.WithReason("Invalid collection name"))
	}
	uris, err := h.docService.ListCollection(c.UserContext(), name)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrCollectionRequired):
		return writeError(c, herodot.ErrBadRequest.WithReason("The collection name is required"))
	case errors.Is(err, repository.ErrBackendUnavailable):
		return writeError(c, errServiceUnavailable.WithReason("Document store connection error"))
	default:
		return writeError(c, herodot.ErrInternalServerError.WithReason("Failed to list collection"))
	}
	return c.JSON(fiber.Map{"collection": name, "uris": uris, "count": len(uris)})
}
