package models

import (
	"time"
)

// Role classifies an account system-wide, independent of any case-specific grant.
type Role string

const (
	RoleAdvocate         Role = "advocate"
	RoleJudge            Role = "judge"
	RoleGovernmentAgency Role = "government_agency"
	RolePrivateIntel     Role = "private_intel"
)

// ValidRole reports whether r is one of the enumerated account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdvocate, RoleJudge, RoleGovernmentAgency, RolePrivateIntel:
		return true
	}
	return false
}

// User represents a registered account. Role is fixed at creation.
type User struct {
	UserID         string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	FullName       string    `gorm:"size:255;not null" json:"full_name"`
	Role           Role      `gorm:"size:32;not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
