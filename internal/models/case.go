package models

import (
	"time"
)

// DefaultCaseStatus is assigned to every newly created case.
const DefaultCaseStatus = "Open"

// Case represents a unit of legal work around which documents and
// permissions are scoped. The creator is a reference, not an owner:
// removing the creating user does not remove the case.
type Case struct {
	CaseID    string    `gorm:"type:char(36);primaryKey" json:"case_id"`
	CaseName  string    `gorm:"size:255;not null" json:"case_name"`
	Status    string    `gorm:"size:64;not null;default:'Open'" json:"status"`
	CreatorID string    `gorm:"type:char(36);not null;index" json:"creator_id"`
	Creator   *User     `gorm:"foreignKey:CreatorID;references:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for Case
func (Case) TableName() string {
	return "cases"
}
