package catalog

// AnswerView is the read-only view of collected answers the summary table
// inspects. An option "matches" a single-select answer by equality and a
// multi-select answer by membership.
type AnswerView interface {
	HasOption(option string) bool
}

// SectionSummary is the interstitial content shown when a section is completed.
type SectionSummary struct {
	Title   string `json:"title"`
	Insight string `json:"insight"`
}

// SummaryForSection picks the interstitial copy for a just-completed section,
// varying one sentence on what the user actually answered.
func SummaryForSection(section string, answers AnswerView) SectionSummary {
	switch section {
	case SectionCurrentSetup:
		insight := "We learned about your vision needs and lifestyle preferences."
		if answers.HasOption(OptionWearsGlasses) {
			insight = "We learned about your current glasses and how you use them daily."
		}
		return SectionSummary{Title: "Current Setup Complete!", Insight: insight}
	case SectionLensComfort:
		insight := "We analyzed your current lens performance and eye comfort."
		if answers.HasOption(OptionEyeStrain) {
			insight = "We identified potential screen-related eye strain to address."
		}
		return SectionSummary{Title: "Vision Analysis Complete!", Insight: insight}
	case SectionLifestyle:
		insight := "We mapped how you spend your time to match the right glasses."
		if answers.HasOption(OptionPlaysSports) {
			insight = "We see you're active - we'll factor that into your recommendations."
		}
		return SectionSummary{Title: "Lifestyle Mapped!", Insight: insight}
	case SectionSunAndStyle:
		return SectionSummary{
			Title:   "Style Preferences Noted!",
			Insight: "Perfect! We now have everything needed for your personalized vision plan.",
		}
	default:
		return SectionSummary{Title: "Section Complete!", Insight: "Great progress!"}
	}
}
