package catalog

// SectionRange is the inclusive step range a section occupies. The intro step
// is not part of any range, so ranges start at 1.
type SectionRange struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

var sectionRanges = buildSectionRanges()

func buildSectionRanges() []SectionRange {
	var ranges []SectionRange
	for i := 1; i < len(questions); i++ {
		section := questions[i].Section
		if n := len(ranges); n > 0 && ranges[n-1].Name == section {
			ranges[n-1].End = i
			continue
		}
		ranges = append(ranges, SectionRange{Name: section, Start: i, End: i})
	}
	return ranges
}

// SectionRanges returns the ordered section ranges derived from the question list.
func SectionRanges() []SectionRange {
	return sectionRanges
}

// SectionChangesAt reports whether the questions on either side of a forward
// move to step belong to different sections.
func SectionChangesAt(step int) bool {
	prev := QuestionAt(step - 1)
	next := QuestionAt(step)
	if prev == nil || next == nil {
		return false
	}
	return prev.Section != next.Section
}
