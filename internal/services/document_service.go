package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/justicelink/justicelink/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// AddDocument registers a document record for an artifact the caller has
// already written to storagePath. Both caseID and uploaderID must resolve
// to existing rows (ErrReference), and storagePath must be globally unique
// (ErrConflict). On failure the caller owns cleaning up the artifact.
func AddDocument(db *gorm.DB, caseID, uploaderID, fileName, storagePath string, metadata models.JSON) (string, error) {
	if fileName == "" || storagePath == "" {
		return "", fmt.Errorf("%w: file_name and storage_path are required", ErrInvalidInput)
	}

	if _, err := GetCase(db, caseID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: case %q does not exist", ErrReference, caseID)
		}
		return "", err
	}
	if _, err := FindUserByID(db, uploaderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: uploader %q does not exist", ErrReference, uploaderID)
		}
		return "", err
	}

	doc := models.Document{
		DocID:       uuid.New().String(),
		CaseID:      caseID,
		UploaderID:  uploaderID,
		FileName:    fileName,
		StoragePath: storagePath,
		Metadata:    metadata,
		UploadedAt:  time.Now().UTC(),
	}

	if err := db.Create(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return "", fmt.Errorf("%w: storage path %q already registered", ErrConflict, storagePath)
		}
		return "", fmt.Errorf("failed to add document record: %w", err)
	}
	return doc.DocID, nil
}

// ListCaseDocuments returns all documents for a case, oldest upload first.
func ListCaseDocuments(db *gorm.DB, caseID string) ([]models.Document, error) {
	var docs []models.Document
	query := db.Where("case_id = ?", caseID).Order("uploaded_at ASC")
	// USE INDEX is MySQL/MariaDB syntax only.
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_documents_case_id"))
	}
	err := query.Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list case documents: %w", err)
	}
	return docs, nil
}

// GetDocument performs an exact lookup. Absence is ErrNotFound.
func GetDocument(db *gorm.DB, docID string) (*models.Document, error) {
	var doc models.Document
	if err := db.Where("doc_id = ?", docID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up document: %w", err)
	}
	return &doc, nil
}

// DeleteDocument removes the record and its physical artifact. An already
// missing artifact is a recoverable inconsistency: it is logged and the
// delete still succeeds. Not exposed over HTTP.
func DeleteDocument(db *gorm.DB, docID string) error {
	doc, err := GetDocument(db, docID)
	if err != nil {
		return err
	}

	res := db.Where("doc_id = ?", docID).Delete(&models.Document{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete document record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := os.Remove(doc.StoragePath); err != nil {
		if os.IsNotExist(err) {
			log.Printf("Document %s deleted; artifact %s already absent", docID, doc.StoragePath)
		} else {
			log.Printf("Document %s deleted; failed to remove artifact %s: %v", docID, doc.StoragePath, err)
		}
	}
	return nil
}
