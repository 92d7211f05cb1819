package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP responses. Degradation
// paths never reach here; only genuine request problems do.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Wizard session not found")
	case errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, "No exam booking for this session")
	case errors.Is(err, ErrStepUnanswered):
		RespondError(c, http.StatusUnprocessableEntity, "Answer the current question before continuing")
	case errors.Is(err, ErrTransitionInFlight):
		RespondError(c, http.StatusConflict, "Section transition in progress, try again shortly")
	case errors.Is(err, ErrWizardComplete):
		RespondError(c, http.StatusConflict, "The questionnaire is already complete")
	case errors.Is(err, ErrNoAnswerableStep):
		RespondError(c, http.StatusBadRequest, "The current step does not take an answer")
	case errors.Is(err, ErrInvalidAnswer):
		RespondError(c, http.StatusBadRequest, "Answer does not match the question type")
	case errors.Is(err, ErrInvalidSlot):
		RespondError(c, http.StatusBadRequest, "Selected slot is outside booking hours")
	case errors.Is(err, ErrInvalidZipCode):
		RespondError(c, http.StatusBadRequest, "Zip code must be 5 digits")
	case errors.Is(err, ErrInsightsNotReady):
		RespondError(c, http.StatusConflict, "Insights are still being generated")
	case errors.Is(err, ErrExportFailed):
		log.Printf("Report export failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "Download failed. Please try again or take a screenshot of your results.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
