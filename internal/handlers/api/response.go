package api

import (
	"github.com/gofiber/fiber/v3"
)

// Envelope status values.
const (
	statusOK    = "ok"
	statusError = "error"
)

// Envelope wraps every successful API response.
type Envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// ErrorEnvelope is the body of every failed API response.
type ErrorEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// jsonSuccess writes data in the success envelope with a 200 status.
func jsonSuccess[T any](c fiber.Ctx, data T) error {
	return c.JSON(Envelope[T]{Status: statusOK, Data: data})
}

// jsonError writes message in the error envelope with the given status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorEnvelope{Status: statusError, Error: message})
}
