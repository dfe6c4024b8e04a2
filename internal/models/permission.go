package models

import (
	"time"
)

// AccessLevel is a per-user, per-case grant value.
type AccessLevel string

const (
	AccessViewOnly   AccessLevel = "view_only"
	AccessUploadOnly AccessLevel = "upload_only"
	AccessSudo       AccessLevel = "sudo"

	// AccessNone is the "no grant exists" sentinel. It is never stored.
	AccessNone AccessLevel = ""
)

// ValidAccessLevel reports whether l is one of the three storable levels.
func ValidAccessLevel(l AccessLevel) bool {
	switch l {
	case AccessViewOnly, AccessUploadOnly, AccessSudo:
		return true
	}
	return false
}

// CasePermission is a (case, user) -> access_level grant. At most one row
// exists per pair; a later grant overwrites the level. Rows are removed
// by the database when the case or the user is removed.
type CasePermission struct {
	PermissionID uint64      `gorm:"primaryKey;autoIncrement" json:"-"`
	CaseID       string      `gorm:"type:char(36);not null;index:idx_case_user,unique" json:"case_id"`
	Case         *Case       `gorm:"foreignKey:CaseID;references:CaseID;constraint:OnDelete:CASCADE" json:"-"`
	UserID       string      `gorm:"type:char(36);not null;index:idx_case_user,unique" json:"user_id"`
	User         *User       `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AccessLevel  AccessLevel `gorm:"size:32;not null" json:"access_level"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName overrides the table name for CasePermission
func (CasePermission) TableName() string {
	return "case_permissions"
}
