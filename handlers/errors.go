package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/ory/herodot"
)

var errorWriter = herodot.NewJSONWriter(nil)

var errServiceUnavailable = herodot.DefaultError{
	CodeField:   http.StatusServiceUnavailable,
	StatusField: http.StatusText(http.StatusServiceUnavailable),
	ErrorField:  "The document store is temporarily unavailable",
}

// writeError renders err as a herodot error body.
func writeError(c *fiber.Ctx, err error) error {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errorWriter.WriteError(w, r, err)
	})(c)
}
