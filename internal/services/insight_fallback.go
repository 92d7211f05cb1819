package services

import (
	"fmt"
	"strings"

	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
)

// BuildFallbackInsights derives the recommendation text from the answers
// alone: same answers, same text, every time. It always emits the four
// sections and exactly three bulleted recommendations.
func BuildFallbackInsights(answers db_models.AnswerSet) string {
	ordered := answers.Ordered()

	heavyScreenTime := false
	for _, a := range ordered {
		if a.Choice != "" && (strings.Contains(a.Choice, "8 hours") || strings.Contains(a.Choice, "More than 8")) {
			heavyScreenTime = true
			break
		}
	}

	hasEyeStrain := false
	for _, a := range ordered {
		for _, sel := range a.Selections {
			if sel == catalog.OptionEyeStrain {
				hasEyeStrain = true
			}
		}
	}

	hasProgressives := false
	for _, a := range ordered {
		if strings.Contains(a.Choice, "Progressive") {
			hasProgressives = true
		}
	}

	activitiesText := ""
	for _, a := range ordered {
		if len(a.Choice) > 10 && !strings.Contains(a.Choice, "hours") && !strings.Contains(a.Choice, "Progressive") {
			activitiesText = a.Choice
			break
		}
	}

	analysis := "Based on your responses, you have diverse visual needs throughout your day that would benefit from a strategic multi-glasses approach."
	primary := "**Primary:** Daily wear glasses with anti-reflective coating and premium lenses"
	secondary := "**Secondary:** Prescription sunglasses with UV protection and polarized lenses"
	third := "**Third:** Backup glasses or specialized computer lenses"

	if heavyScreenTime && hasEyeStrain {
		analysis = "Your extensive screen time combined with eye strain symptoms indicates you need specialized solutions for digital comfort and general vision needs."
		primary = "**Primary:** Computer glasses with blue light filtering and anti-reflective coating - optimized for your extensive screen work"
		third = "**Third:** General-purpose everyday glasses for non-screen activities"
	}

	// Runs unconditionally after the screen-time branch and may overwrite
	// its primary/third picks; the original resolves the conflict this way.
	if hasProgressives {
		primary = "**Primary:** Progressive lenses with premium coatings - seamless vision at all distances"
		third = "**Third:** Dedicated reading glasses for extended close-up work and enhanced comfort"
	}

	if len(activitiesText) > 20 {
		lower := strings.ToLower(activitiesText)
		if strings.Contains(lower, "sport") || strings.Contains(lower, "tennis") || strings.Contains(lower, "cycling") {
			secondary = "**Secondary:** Sport-specific glasses with impact-resistant lenses and secure fit - perfect for your active lifestyle"
		}
		if strings.Contains(lower, "driving") || strings.Contains(lower, "night") {
			third = "**Third:** Specialized driving glasses with anti-glare coating for enhanced night vision safety"
		}
	}

	return fmt.Sprintf(
		"**Your Vision Analysis:** %s Your questionnaire responses show specific patterns that guide us toward a personalized three-glasses system.\n\n"+
			"**Recommended Eyewear System:**\n• %s\n• %s\n• %s\n\n"+
			"**Why This Setup:** This three-glasses approach ensures optimal vision for your specific lifestyle demands. Each pair addresses different visual environments and activities, providing comprehensive coverage for work, leisure, and daily life.\n\n"+
			"**Activity-Specific Tips:** Keep your most-used glasses easily accessible in your daily routine. Consider lens cleaning kits for each pair to maintain optimal clarity. Schedule regular eye exams to keep prescriptions current and adjust recommendations as your needs evolve.",
		analysis, primary, secondary, third,
	)
}
