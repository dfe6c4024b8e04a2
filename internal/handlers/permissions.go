package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
	"gorm.io/gorm"
)

// PermissionHandler handles per-case access grant routes
type PermissionHandler struct {
	DB *gorm.DB
}

// GrantAccessInput is the POST /api/case/:id/grant-access request body.
// AccessLevel defaults to view_only when omitted.
type GrantAccessInput struct {
	UserID      string `json:"user_id"`
	AccessLevel string `json:"access_level"`
}

// ListPermissions handles GET /api/case/:id/permissions
// @Summary List grants for a case
// @Tags Permissions
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Success 200 {array} models.CasePermission
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /case/{id}/permissions [get]
func (h *PermissionHandler) ListPermissions(c *fiber.Ctx) error {
	caseID := c.Params("id")

	hasGrant, err := services.CheckAccess(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "permissions.list")
	}
	if !services.CanViewPermissions(callerRole(c), hasGrant) {
		return forbidden(c, "You do not have access to this case", "permissions.list")
	}

	grants, err := services.ListCasePermissions(h.DB, caseID)
	if err != nil {
		return storeError(c, err, "permissions.list")
	}
	return c.Status(fiber.StatusOK).JSON(grants)
}

// GrantAccess handles POST /api/case/:id/grant-access
// @Summary Grant or update access for a user
// @Description Judges, or holders of a sudo grant on the case
// @Tags Permissions
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Param body body GrantAccessInput true "Grant fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /case/{id}/grant-access [post]
func (h *PermissionHandler) GrantAccess(c *fiber.Ctx) error {
	caseID := c.Params("id")

	granterLevel, err := services.GetAccessLevel(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "permissions.grant")
	}
	if !services.CanGrantAccess(callerRole(c), granterLevel) {
		return forbidden(c, "You do not have permission to grant access to this case", "permissions.grant")
	}

	var input GrantAccessInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "permissions.grant")
	}
	if input.UserID == "" {
		return utils.ErrorResponse(c, "User ID is required", fiber.StatusBadRequest, "permissions.grant")
	}
	level := models.AccessLevel(input.AccessLevel)
	if level == models.AccessNone {
		level = models.AccessViewOnly
	}
	if !models.ValidAccessLevel(level) {
		return utils.ErrorResponse(c, "Invalid access level", fiber.StatusBadRequest, "permissions.grant")
	}

	if err := services.GrantAccess(h.DB, caseID, input.UserID, level); err != nil {
		if errors.Is(err, services.ErrReference) {
			return utils.ErrorResponse(c, "Failed to grant access",
				fiber.StatusInternalServerError, "permissions.grant")
		}
		return storeError(c, err, "permissions.grant")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Access granted successfully"})
}
