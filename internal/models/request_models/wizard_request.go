package request_models

// AnswerRequest carries the value for the session's current step. Exactly one
// field is read, chosen by the question type: Choice for single-select and
// free-text, Selections for multi-select, Scale for sliders.
type AnswerRequest struct {
	Choice     *string  `json:"choice,omitempty"`
	Selections []string `json:"selections,omitempty"`
	Scale      *int     `json:"scale,omitempty" binding:"omitempty,min=0,max=100"`
}
