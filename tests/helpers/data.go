package helpers

import (
	"testing"

	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/services"
	"gorm.io/gorm"
)

// TestPassword is the password all seeded accounts share.
const TestPassword = "S3cure!pass"

// SeedUser creates an account and returns its id.
func SeedUser(t *testing.T, db *gorm.DB, email string, role models.Role) string {
	t.Helper()
	id, err := services.CreateUser(db, email, TestPassword, "Test "+email, role)
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return id
}

// SeedCase creates a case owned by creatorID and returns its id.
func SeedCase(t *testing.T, db *gorm.DB, name, creatorID string) string {
	t.Helper()
	id, err := services.CreateCase(db, name, creatorID)
	if err != nil {
		t.Fatalf("Failed to seed case %s: %v", name, err)
	}
	return id
}

// SeedGrant grants userID the given level on caseID.
func SeedGrant(t *testing.T, db *gorm.DB, caseID, userID string, level models.AccessLevel) {
	t.Helper()
	if err := services.GrantAccess(db, caseID, userID, level); err != nil {
		t.Fatalf("Failed to seed grant on %s for %s: %v", caseID, userID, err)
	}
}
