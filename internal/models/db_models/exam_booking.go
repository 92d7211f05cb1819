package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamBooking is the single confirmed eye-exam slot for a session. Selecting
// a new slot replaces the previous row, so at most one booking exists per
// session.
type ExamBooking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;index;not null"`
	DateLabel string    `gorm:"not null"` // e.g. "Tue, Sep 1"
	TimeLabel string    `gorm:"not null"` // e.g. "10 AM"
	StartsAt  int64     `gorm:"not null"` // unix seconds of the exact slot
	ZipCode   string

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (b *ExamBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *ExamBooking) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
