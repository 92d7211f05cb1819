package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	InsightStatusPending    = "pending"
	InsightStatusGenerating = "generating"
	InsightStatusReady      = "ready"
)

// WizardSession is one in-flight run of the questionnaire. The default store
// is an in-memory database, so sessions live only as long as the process.
type WizardSession struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CurrentStep int            `gorm:"not null;default:0"`
	Answers     datatypes.JSON `gorm:"type:json"`

	// Interstitial state, set while a section-complete screen is showing and
	// the real step change is deferred.
	ShowingSectionComplete  bool
	CompletedSectionTitle   string
	CompletedSectionInsight string

	InsightStatus string `gorm:"default:pending"`
	InsightText   string

	ZipCode       string
	HasBookedExam bool

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (s *WizardSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().Unix()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.InsightStatus == "" {
		s.InsightStatus = InsightStatusPending
	}
	return nil
}

func (s *WizardSession) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now().Unix()
	return nil
}

// AnswerSet decodes the answers column. Always returns a usable set.
func (s *WizardSession) AnswerSet() (AnswerSet, error) {
	return UnmarshalAnswerSet(s.Answers)
}

// SetAnswerSet encodes the set back into the answers column.
func (s *WizardSession) SetAnswerSet(set AnswerSet) error {
	raw, err := set.Marshal()
	if err != nil {
		return err
	}
	s.Answers = datatypes.JSON(raw)
	return nil
}
