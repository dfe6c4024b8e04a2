package models

import (
	"time"
)

// Document is a registry entry for one physical artifact stored on disk.
// The record exists only after the artifact has been durably written;
// StoragePath is globally unique (one blob per path).
type Document struct {
	DocID       string    `gorm:"type:char(36);primaryKey" json:"doc_id"`
	CaseID      string    `gorm:"type:char(36);not null;index:idx_documents_case_id" json:"case_id"`
	Case        *Case     `gorm:"foreignKey:CaseID;references:CaseID" json:"-"`
	UploaderID  string    `gorm:"type:char(36);not null;index" json:"uploader_id"`
	Uploader    *User     `gorm:"foreignKey:UploaderID;references:UserID" json:"-"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	StoragePath string    `gorm:"size:512;not null;uniqueIndex" json:"storage_path"`
	Metadata    JSON      `gorm:"type:json" json:"metadata,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
