package response_models

import "optiqa/pkg/utils"

// ReportEntry is one answered question in the exported report.
type ReportEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ReportDocument is the printable summary handed to the export collaborator:
// title, Q&A listing, insight text and a generation timestamp.
type ReportDocument struct {
	Title       string               `json:"title"`
	GeneratedAt string               `json:"generated_at"`
	Entries     []ReportEntry        `json:"entries"`
	Insights    string               `json:"insights"`
	Blocks      []utils.InsightBlock `json:"blocks,omitempty"`
}
