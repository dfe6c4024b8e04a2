package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/storage"
	"github.com/justicelink/justicelink/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentHandler handles per-case document routes
type DocumentHandler struct {
	DB    *gorm.DB
	Files *storage.FileStore
}

// ListDocuments handles GET /api/case/:id/documents
// @Summary List documents for a case
// @Tags Documents
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Success 200 {array} models.Document
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /case/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	caseID := c.Params("id")

	hasGrant, err := services.CheckAccess(h.DB, caseID, callerID(c))
	if err != nil {
		return storeError(c, err, "documents.list")
	}
	if !services.CanListDocuments(callerRole(c), hasGrant) {
		return forbidden(c, "You do not have access to this case", "documents.list")
	}

	docs, err := services.ListCaseDocuments(h.DB, caseID)
	if err != nil {
		return storeError(c, err, "documents.list")
	}
	return c.Status(fiber.StatusOK).JSON(docs)
}

// Upload handles POST /api/case/:id/upload
// @Summary Upload a document to a case
// @Description Judges, or holders of sudo or upload_only access. Multipart field "file".
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Security CookieAuth
// @Param id path string true "Case ID"
// @Param file formData file true "Document file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /case/{id}/upload [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	caseID := c.Params("id")
	userID := callerID(c)

	level, err := services.GetAccessLevel(h.DB, caseID, userID)
	if err != nil {
		return storeError(c, err, "documents.upload")
	}
	if !services.CanUploadDocument(callerRole(c), level) {
		return forbidden(c, "You do not have permission to upload to this case", "documents.upload")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "No file part", fiber.StatusBadRequest, "documents.upload")
	}
	if fileHeader.Filename == "" {
		return utils.ErrorResponse(c, "No selected file", fiber.StatusBadRequest, "documents.upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, "Failed to read uploaded file",
			fiber.StatusInternalServerError, "documents.upload")
	}
	defer src.Close()

	originalName := storage.SanitizeName(fileHeader.Filename)
	storagePath, err := h.Files.Save(src, h.Files.StorageName(caseID, userID, fileHeader.Filename))
	if err != nil {
		return utils.ErrorResponse(c, "Failed to store uploaded file",
			fiber.StatusInternalServerError, "documents.upload")
	}

	meta, _ := json.Marshal(fiber.Map{
		"size":         fileHeader.Size,
		"content_type": fileHeader.Header.Get("Content-Type"),
	})

	docID, err := services.AddDocument(h.DB, caseID, userID, originalName, storagePath,
		models.JSON{JSON: datatypes.JSON(meta)})
	if err != nil {
		// The artifact must not outlive a failed record insert. Cleanup is
		// best effort: a failure here is logged, not escalated.
		if rmErr := h.Files.Remove(storagePath); rmErr != nil {
			log.Printf("Failed to clean up artifact %s after record failure: %v", storagePath, rmErr)
		}
		return utils.ErrorResponse(c, "Failed to save document record",
			fiber.StatusInternalServerError, "documents.upload")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"doc_id":  docID,
	})
}

// Download handles GET /api/document/:id/download
// @Summary Download a document
// @Description Access is checked against the document's case
// @Tags Documents
// @Produce octet-stream
// @Security CookieAuth
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /document/{id}/download [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	doc, err := services.GetDocument(h.DB, c.Params("id"))
	if err != nil {
		return storeError(c, err, "documents.download")
	}

	hasGrant, err := services.CheckAccess(h.DB, doc.CaseID, callerID(c))
	if err != nil {
		return storeError(c, err, "documents.download")
	}
	if !services.CanDownloadDocument(callerRole(c), hasGrant) {
		return forbidden(c, "You do not have permission to download this file", "documents.download")
	}

	return c.Download(doc.StoragePath, doc.FileName)
}
