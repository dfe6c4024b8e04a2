package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
	"gorm.io/gorm"
)

// CaseHandler handles case lifecycle routes
type CaseHandler struct {
	DB *gorm.DB
}

// CreateCaseInput is the POST /api/cases request body
type CreateCaseInput struct {
	CaseName string `json:"case_name"`
}

// UpdateStatusInput is the PUT /api/case/:id/status request body
type UpdateStatusInput struct {
	Status string `json:"status"`
}

// CreateCase handles POST /api/cases
// @Summary Create a case
// @Description Judges and advocates only; the case opens with status "Open"
// @Tags Cases
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param body body CreateCaseInput true "Case fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /cases [post]
func (h *CaseHandler) CreateCase(c *fiber.Ctx) error {
	if !services.CanCreateCase(callerRole(c)) {
		return forbidden(c, "You do not have permission to create a case", "cases.create")
	}

	var input CreateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "cases.create")
	}
	if input.CaseName == "" {
		return utils.ErrorResponse(c, "Case name is required", fiber.StatusBadRequest, "cases.create")
	}

	caseID, err := services.CreateCase(h.DB, input.CaseName, callerID(c))
	if err != nil {
		return storeError(c, err, "cases.create")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Case created successfully",
		"case_id": caseID,
	})
}

// ListCases handles GET /api/cases
// @Summary List visible cases
// @Description Judges see every case; everyone else sees created or granted cases
// @Tags Cases
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.Case
// @Router /cases [get]
func (h *CaseHandler) ListCases(c *fiber.Ctx) error {
	cases, err := services.ListCases(h.DB, callerID(c), callerRole(c))
	if err != nil {
		return storeError(c, err, "cases.list")
	}
	return c.Status(fiber.StatusOK).JSON(cases)
}

// GetCase handles GET /api/case/:id
// @Summary Get a case
// @Tags Cases
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Success 200 {object} models.Case
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /case/{id} [get]
func (h *CaseHandler) GetCase(c *fiber.Ctx) error {
	caseID := c.Params("id")

	hasGrant, err := services.CheckAccess(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "cases.get")
	}
	if !services.CanViewCase(callerRole(c), hasGrant) {
		return forbidden(c, "You do not have access to this case", "cases.get")
	}

	kase, err := services.GetCase(h.DB, caseID)
	if err != nil {
		return storeError(c, err, "cases.get")
	}
	return c.Status(fiber.StatusOK).JSON(kase)
}

// UpdateStatus handles PUT /api/case/:id/status
// @Summary Update a case status
// @Description Judges, or advocates holding sudo or view_only access
// @Tags Cases
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Param body body UpdateStatusInput true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /case/{id}/status [put]
func (h *CaseHandler) UpdateStatus(c *fiber.Ctx) error {
	caseID := c.Params("id")

	level, err := services.GetAccessLevel(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "cases.status")
	}
	if !services.CanUpdateCaseStatus(callerRole(c), level) {
		return forbidden(c, "You do not have permission to update this case status", "cases.status")
	}

	var input UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "cases.status")
	}
	if input.Status == "" {
		return utils.ErrorResponse(c, "Status is required", fiber.StatusBadRequest, "cases.status")
	}

	updated, err := services.UpdateCaseStatus(h.DB, caseID, input.Status)
	if err != nil {
		return storeError(c, err, "cases.status")
	}
	if !updated {
		return utils.ErrorResponse(c, "Failed to update case status",
			fiber.StatusInternalServerError, "cases.status")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Case status updated successfully"})
}

// Summarize handles GET /api/case/:id/summary
// @Summary Summarize a case
// @Description Returns a canned summary remark; document contents are not analyzed
// @Tags Cases
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /case/{id}/summary [get]
func (h *CaseHandler) Summarize(c *fiber.Ctx) error {
	caseID := c.Params("id")

	hasGrant, err := services.CheckAccess(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "cases.summary")
	}
	if !services.CanSummarizeCase(callerRole(c), hasGrant) {
		return forbidden(c, "You do not have access to this case", "cases.summary")
	}

	summary, err := services.SummarizeCase(h.DB, caseID)
	if err != nil {
		return storeError(c, err, "cases.summary")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"summary": summary})
}
