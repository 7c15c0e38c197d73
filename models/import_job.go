package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportJob is a durable summary of one bulk-upload run. The import itself
// is synchronous, so this is an audit record rather than a progress tracker.
type ImportJob struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionType string    `json:"transaction_type"`
	ValidateOnly    bool      `json:"validate_only"`
	Total           int       `json:"total"`
	Successful      int       `json:"successful"`
	Failed          int       `json:"failed"`
	StartedAt       time.Time `json:"started_at"`
	CompletedAt     time.Time `json:"completed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

func (j *ImportJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
