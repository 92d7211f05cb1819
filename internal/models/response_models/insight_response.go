package response_models

import "optiqa/pkg/utils"

// InsightStatusResponse reports insight generation to the renderer. Progress
// is cosmetic while generating; Insights and Blocks are set once ready.
type InsightStatusResponse struct {
	Status   string               `json:"status"`
	Progress int                  `json:"progress"`
	Insights string               `json:"insights,omitempty"`
	Blocks   []utils.InsightBlock `json:"blocks,omitempty"`
}
