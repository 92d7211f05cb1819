package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"optiqa/internal/models/db_models"
	"optiqa/internal/models/request_models"
	"optiqa/internal/models/response_models"
	"optiqa/internal/repositories"
	"optiqa/pkg/utils"
)

const (
	bookingDayCount  = 10
	bookingFirstHour = 9
	bookingLastHour  = 17
	bookingLunchHour = 13
)

type BookingServiceInterface interface {
	ListUpcomingBusinessDays(n int) []response_models.CalendarDay
	ListTimeSlotsFor(day string) ([]response_models.TimeSlot, error)
	SelectSlot(ctx context.Context, sessionID string, req request_models.SelectSlotRequest) (*response_models.BookingConfirmation, error)
	Confirmation(ctx context.Context, sessionID string) (*response_models.BookingConfirmation, error)
}

type BookingService struct {
	repo repositories.SessionRepositoryInterface

	now func() time.Time
	// slotTaken fakes availability; roughly 30% of slots render as booked.
	slotTaken func() bool
}

func NewBookingService(repo repositories.SessionRepositoryInterface) BookingServiceInterface {
	return &BookingService{
		repo:      repo,
		now:       time.Now,
		slotTaken: func() bool { return rand.Float64() < 0.3 },
	}
}

// ListUpcomingBusinessDays returns the next n weekdays starting tomorrow.
func (s *BookingService) ListUpcomingBusinessDays(n int) []response_models.CalendarDay {
	if n <= 0 {
		n = bookingDayCount
	}
	days := make([]response_models.CalendarDay, 0, n)
	day := utils.StartOfNextDay(s.now())
	for len(days) < n {
		if !utils.IsWeekend(day) {
			days = append(days, response_models.CalendarDay{
				Date:    day.Format(utils.DayFormat),
				Label:   utils.FormatDayLabel(day),
				Weekday: day.Weekday().String(),
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}

// ListTimeSlotsFor generates the hourly slots of a day: 9 through 17,
// skipping the lunch hour.
func (s *BookingService) ListTimeSlotsFor(day string) ([]response_models.TimeSlot, error) {
	date, err := utils.ParseDay(day, s.now().Location())
	if err != nil {
		return nil, utils.ErrInvalidSlot
	}

	var slots []response_models.TimeSlot
	for hour := bookingFirstHour; hour <= bookingLastHour; hour++ {
		if hour == bookingLunchHour {
			continue
		}
		at := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		slots = append(slots, response_models.TimeSlot{
			Time:     utils.FormatTimeLabel(at),
			StartsAt: at.Format(time.RFC3339),
			IsBooked: s.slotTaken(),
		})
	}
	return slots, nil
}

// SelectSlot records the chosen slot for the session. A new selection
// replaces any prior one; afterwards the session renders the confirmation
// view instead of the calendar.
func (s *BookingService) SelectSlot(ctx context.Context, sessionID string, req request_models.SelectSlotRequest) (*response_models.BookingConfirmation, error) {
	if !validZipCode(req.ZipCode) {
		return nil, utils.ErrInvalidZipCode
	}

	at, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, utils.ErrInvalidSlot
	}
	if utils.IsWeekend(at) || at.Minute() != 0 ||
		at.Hour() < bookingFirstHour || at.Hour() > bookingLastHour || at.Hour() == bookingLunchHour {
		return nil, utils.ErrInvalidSlot
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	booking := &db_models.ExamBooking{
		SessionID: session.ID,
		DateLabel: utils.FormatDayLabel(at),
		TimeLabel: utils.FormatTimeLabel(at),
		StartsAt:  at.Unix(),
		ZipCode:   req.ZipCode,
	}
	if err := s.repo.ReplaceBooking(ctx, booking); err != nil {
		log.Printf("Error storing booking for session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}

	session.HasBookedExam = true
	session.ZipCode = req.ZipCode
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Printf("Error flagging booking for session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}

	return s.confirmation(booking), nil
}

func (s *BookingService) Confirmation(ctx context.Context, sessionID string) (*response_models.BookingConfirmation, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if !session.HasBookedExam {
		return nil, utils.ErrBookingNotFound
	}

	booking, err := s.repo.GetBookingBySession(ctx, session.ID)
	if err != nil {
		log.Printf("Error loading booking for session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return s.confirmation(booking), nil
}

func (s *BookingService) confirmation(booking *db_models.ExamBooking) *response_models.BookingConfirmation {
	return &response_models.BookingConfirmation{
		Date:      booking.DateLabel,
		Time:      booking.TimeLabel,
		StartsAt:  time.Unix(booking.StartsAt, 0).Format(time.RFC3339),
		ZipCode:   booking.ZipCode,
		Opticians: Opticians(),
	}
}

func validZipCode(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
