package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/justicelink/justicelink/internal/models"
	"gorm.io/gorm"
)

// CreateCase opens a new case with status "Open" and returns its id.
// The creator must resolve to an existing user (ErrReference otherwise).
func CreateCase(db *gorm.DB, caseName, creatorID string) (string, error) {
	if caseName == "" {
		return "", fmt.Errorf("%w: case_name is required", ErrInvalidInput)
	}

	// Validate the creator reference up front so the failure mode is the
	// same on engines without enforced foreign keys.
	var count int64
	if err := db.Model(&models.User{}).Where("user_id = ?", creatorID).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check creator: %w", err)
	}
	if count == 0 {
		return "", fmt.Errorf("%w: creator %q does not exist", ErrReference, creatorID)
	}

	kase := models.Case{
		CaseID:    uuid.New().String(),
		CaseName:  caseName,
		Status:    models.DefaultCaseStatus,
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := db.Create(&kase).Error; err != nil {
		return "", fmt.Errorf("failed to create case: %w", err)
	}
	return kase.CaseID, nil
}

// GetCase performs an exact lookup. Absence is ErrNotFound.
func GetCase(db *gorm.DB, caseID string) (*models.Case, error) {
	var kase models.Case
	if err := db.Where("case_id = ?", caseID).First(&kase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up case: %w", err)
	}
	return &kase, nil
}

// ListCases returns the cases visible to a user: judges see every case,
// everyone else sees the cases they created plus the cases they hold a
// permission grant for, without duplicates.
func ListCases(db *gorm.DB, userID string, role models.Role) ([]models.Case, error) {
	var cases []models.Case

	if role == models.RoleJudge {
		if err := db.Order("created_at DESC").Find(&cases).Error; err != nil {
			return nil, fmt.Errorf("failed to list cases: %w", err)
		}
		return cases, nil
	}

	err := db.
		Where("creator_id = ?", userID).
		Or("case_id IN (?)", db.Model(&models.CasePermission{}).
			Select("case_id").
			Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cases for user: %w", err)
	}
	return cases, nil
}

// UpdateCaseStatus overwrites the status of an existing case. The boolean
// reports whether a row was affected; false means the case did not exist.
func UpdateCaseStatus(db *gorm.DB, caseID, newStatus string) (bool, error) {
	if newStatus == "" {
		return false, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	res := db.Model(&models.Case{}).Where("case_id = ?", caseID).Update("status", newStatus)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update case status: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteCase hard-deletes a case. The delete is refused with ErrReference
// while document records still point at the case. Permission grants go
// with the case via the cascade constraint. Not exposed over HTTP.
func DeleteCase(db *gorm.DB, caseID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var docs int64
		if err := tx.Model(&models.Document{}).Where("case_id = ?", caseID).Count(&docs).Error; err != nil {
			return fmt.Errorf("failed to count case documents: %w", err)
		}
		if docs > 0 {
			return fmt.Errorf("%w: case %q still has %d documents", ErrReference, caseID, docs)
		}

		// Engines without enforced FK cascades need the explicit sweep.
		if err := tx.Where("case_id = ?", caseID).Delete(&models.CasePermission{}).Error; err != nil {
			return fmt.Errorf("failed to remove case permissions: %w", err)
		}

		res := tx.Where("case_id = ?", caseID).Delete(&models.Case{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete case: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
