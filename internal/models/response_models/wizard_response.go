package response_models

import (
	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
)

// SectionProgress is one section's slice of the overall progress bar.
type SectionProgress struct {
	Name       string  `json:"name"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Progress   float64 `json:"progress"`
	IsActive   bool    `json:"is_active"`
	IsComplete bool    `json:"is_complete"`
}

// WizardStateResponse is everything a renderer needs to paint the current step.
type WizardStateResponse struct {
	SessionID      string            `json:"session_id"`
	CurrentStep    int               `json:"current_step"`
	TotalQuestions int               `json:"total_questions"`
	IsComplete     bool              `json:"is_complete"`
	Question       *catalog.Question `json:"question,omitempty"`
	Answer         *db_models.Answer `json:"answer,omitempty"`
	StepAnswered   bool              `json:"step_answered"`
	Progress       float64           `json:"progress"`
	Sections       []SectionProgress `json:"sections"`

	ShowingSectionComplete bool                    `json:"showing_section_complete"`
	SectionComplete        *catalog.SectionSummary `json:"section_complete,omitempty"`
}

// StartWizardResponse returns the session token alongside the intro state.
type StartWizardResponse struct {
	Token string              `json:"token"`
	State WizardStateResponse `json:"state"`
}
