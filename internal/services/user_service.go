package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/justicelink/justicelink/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinEmailQueryLength is the shortest allowed search_by_email query.
const MinEmailQueryLength = 3

// CreateUser registers a new account and returns its user id.
// The password is stored only as a bcrypt digest. Returns ErrInvalidInput
// for an unknown role and ErrConflict when the email is already taken.
func CreateUser(db *gorm.DB, email, password, fullName string, role models.Role) (string, error) {
	if email == "" || password == "" || fullName == "" {
		return "", fmt.Errorf("%w: email, password and full_name are required", ErrInvalidInput)
	}
	if !models.ValidRole(role) {
		return "", fmt.Errorf("%w: invalid role %q", ErrInvalidInput, role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:         uuid.New().String(),
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       fullName,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return "", fmt.Errorf("%w: email %q already registered", ErrConflict, email)
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.UserID, nil
}

// FindUserByEmail performs an exact email lookup. Absence is ErrNotFound.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	return &user, nil
}

// FindUserByID performs an exact id lookup. Absence is ErrNotFound.
func FindUserByID(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by id: %w", err)
	}
	return &user, nil
}

// VerifyPassword reports whether candidate matches the stored bcrypt digest.
// bcrypt performs the comparison in constant time.
func VerifyPassword(storedHash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}

// SearchUsersByEmail returns all users whose email contains the partial
// query. Queries shorter than MinEmailQueryLength fail with ErrInvalidInput
// before any storage access.
func SearchUsersByEmail(db *gorm.DB, partial string) ([]models.User, error) {
	if len(partial) < MinEmailQueryLength {
		return nil, fmt.Errorf("%w: email query must be at least %d characters", ErrInvalidInput, MinEmailQueryLength)
	}

	var users []models.User
	if err := db.Where("email LIKE ?", "%"+partial+"%").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// isUniqueViolation sniffs driver error strings for unique constraint
// failures on drivers that do not translate to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"UNIQUE constraint failed", "Duplicate entry", "duplicate key value"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
