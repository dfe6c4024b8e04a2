package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/justicelink/justicelink/internal/middleware"
	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
)

// callerID returns the authenticated user id published by RequireAuth.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalUserID).(string)
	return id
}

// callerRole returns the authenticated role published by RequireAuth.
func callerRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(middleware.LocalRole).(models.Role)
	return role
}

// storeError translates the service error taxonomy into the HTTP envelope.
// Reference failures surface as 500 like any other store failure; the
// clean taxonomy codes are reserved for input, lookup and uniqueness
// outcomes.
func storeError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType)
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// forbidden is the uniform 403 for policy denials.
func forbidden(c *fiber.Ctx, message, errorType string) error {
	return utils.ErrorResponse(c, message, fiber.StatusForbidden, errorType)
}
