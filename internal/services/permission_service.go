package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/justicelink/justicelink/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantAccess creates or overwrites the grant for (caseID, userID). A
// repeated grant updates the level in place; two concurrent grants race at
// upsert granularity, last writer wins. Both references must exist.
func GrantAccess(db *gorm.DB, caseID, userID string, level models.AccessLevel) error {
	if !models.ValidAccessLevel(level) {
		return fmt.Errorf("%w: invalid access level %q", ErrInvalidInput, level)
	}

	if _, err := GetCase(db, caseID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: case %q does not exist", ErrReference, caseID)
		}
		return err
	}
	if _, err := FindUserByID(db, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: user %q does not exist", ErrReference, userID)
		}
		return err
	}

	grant := models.CasePermission{
		CaseID:      caseID,
		UserID:      userID,
		AccessLevel: level,
		UpdatedAt:   time.Now().UTC(),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "case_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_level", "updated_at"}),
	}).Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to grant access: %w", err)
	}
	return nil
}

// RevokeAccess removes the grant for (caseID, userID) if one exists.
func RevokeAccess(db *gorm.DB, caseID, userID string) error {
	err := db.Where("case_id = ? AND user_id = ?", caseID, userID).
		Delete(&models.CasePermission{}).Error
	if err != nil {
		return fmt.Errorf("failed to revoke access: %w", err)
	}
	return nil
}

// GetAccessLevel returns the stored level for (caseID, userID), or
// models.AccessNone when no grant exists. Absence is not an error.
func GetAccessLevel(db *gorm.DB, caseID, userID string) (models.AccessLevel, error) {
	var grant models.CasePermission
	err := db.Where("case_id = ? AND user_id = ?", caseID, userID).First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AccessNone, nil
		}
		return models.AccessNone, fmt.Errorf("failed to look up access level: %w", err)
	}
	return grant.AccessLevel, nil
}

// CheckAccess reports whether any grant row exists for (caseID, userID),
// regardless of its level.
func CheckAccess(db *gorm.DB, caseID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.CasePermission{}).
		Where("case_id = ? AND user_id = ?", caseID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check access: %w", err)
	}
	return count > 0, nil
}

// ListCasePermissions returns all grants for a case. Order carries no
// contractual meaning.
func ListCasePermissions(db *gorm.DB, caseID string) ([]models.CasePermission, error) {
	var grants []models.CasePermission
	if err := db.Where("case_id = ?", caseID).Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("failed to list case permissions: %w", err)
	}
	return grants, nil
}
