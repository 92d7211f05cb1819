package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"optiqa/internal/models/db_models"
)

type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *db_models.WizardSession) error
	GetSessionByID(ctx context.Context, id uuid.UUID) (*db_models.WizardSession, error)
	UpdateSession(ctx context.Context, session *db_models.WizardSession) error
	ReplaceBooking(ctx context.Context, booking *db_models.ExamBooking) error
	GetBookingBySession(ctx context.Context, sessionID uuid.UUID) (*db_models.ExamBooking, error)
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

type SessionRepository struct {
	db *gorm.DB
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *db_models.WizardSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetSessionByID(ctx context.Context, id uuid.UUID) (*db_models.WizardSession, error) {
	var session db_models.WizardSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) UpdateSession(ctx context.Context, session *db_models.WizardSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// ReplaceBooking deletes any prior booking for the session before inserting,
// so only one selected slot ever exists.
func (r *SessionRepository) ReplaceBooking(ctx context.Context, booking *db_models.ExamBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", booking.SessionID).Delete(&db_models.ExamBooking{}).Error; err != nil {
			return err
		}
		return tx.Create(booking).Error
	})
}

func (r *SessionRepository) GetBookingBySession(ctx context.Context, sessionID uuid.UUID) (*db_models.ExamBooking, error) {
	var booking db_models.ExamBooking
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
