package utils

import "errors"

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrStepUnanswered     = errors.New("current step is not answered")
	ErrTransitionInFlight = errors.New("a section transition is already in flight")
	ErrWizardComplete     = errors.New("wizard already reached the results step")
	ErrNoAnswerableStep   = errors.New("current step does not take an answer")
	ErrInvalidAnswer      = errors.New("answer does not match the question type")
	ErrInvalidSlot        = errors.New("slot is outside booking hours")
	ErrInvalidZipCode     = errors.New("zip code must be 5 digits")
	ErrBookingNotFound    = errors.New("no exam booking for this session")
	ErrInsightsNotReady   = errors.New("insights are not generated yet")
	ErrExportFailed       = errors.New("report export failed")
	ErrDatabaseError      = errors.New("database error")
)
