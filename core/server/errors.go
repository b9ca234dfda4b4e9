package server

import (
	"errors"

	"admin-console/core/console"
	"admin-console/core/pager"
	"admin-console/core/snapshot"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a service error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, console.ErrStaleResponse):
		return fiber.StatusConflict
	case errors.Is(err, console.ErrSessionNotFound),
		errors.Is(err, console.ErrRowNotFound),
		errors.Is(err, snapshot.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, pager.ErrUnknownMove):
		return fiber.StatusBadRequest
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe.Code
		}
		return fiber.StatusInternalServerError
	}
}

// Error writes err as a JSON error body with the status of StatusFor.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// BadRequest writes a 400 JSON error body.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
