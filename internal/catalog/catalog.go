package catalog

type QuestionType string

const (
	TypeIntro    QuestionType = "intro"
	TypeMultiple QuestionType = "multiple"
	TypeSingle   QuestionType = "single"
	TypeText     QuestionType = "text"
	TypeSlider   QuestionType = "slider"
)

// Question is a single step of the wizard. Defined once at startup, never mutated.
type Question struct {
	Type          QuestionType `json:"type"`
	Section       string       `json:"section"`
	Title         string       `json:"title,omitempty"`
	Subtitle      string       `json:"subtitle,omitempty"`
	Note          string       `json:"note,omitempty"`
	Prompt        string       `json:"question,omitempty"`
	Options       []string     `json:"options,omitempty"`
	Placeholder   string       `json:"placeholder,omitempty"`
	SliderLabels  []string     `json:"slider_labels,omitempty"`
	SliderDefault int          `json:"slider_default,omitempty"`
}

const (
	SectionGetStarted   = "Let's Get Started"
	SectionCurrentSetup = "Your Current Setup"
	SectionLensComfort  = "Lens Comfort & Eye Experience"
	SectionLifestyle    = "Lifestyle & Vision Needs"
	SectionSunAndStyle  = "Sun, Style & Self-Expression"
)

// Option markers the insight rules key on.
const (
	OptionWearsGlasses = "Yes, I wear glasses"
	OptionEyeStrain    = "Eye strain at screen"
	OptionPlaysSports  = "Exercise or play sports"
	OptionProgressive  = "Progressive (multifocal)"
	OptionHeavyScreen  = "More than 8 hours"
)

var questions = []Question{
	{
		Type:     TypeIntro,
		Section:  SectionGetStarted,
		Title:    "Let's match your glasses with your lifestyle",
		Subtitle: "Answer a few quick questions to discover which types of glasses actually fit your day-to-day life.",
		Note:     "(Takes 2 minutes – and you might learn something useful about your vision!)",
	},
	{
		Type:    TypeSingle,
		Section: SectionCurrentSetup,
		Prompt:  "Do you currently wear glasses or lenses?",
		Options: []string{OptionWearsGlasses, "Yes, I wear both glasses and contact lenses", "No, but I think I need them", "No, and I don't think I need them"},
	},
	{
		Type:    TypeSingle,
		Section: SectionCurrentSetup,
		Prompt:  "How many pairs of glasses do you regularly use?",
		Options: []string{"Just one", "Two", "More than two", "None"},
	},
	{
		Type:    TypeMultiple,
		Section: SectionCurrentSetup,
		Prompt:  "What do you mostly use your glasses for?",
		Options: []string{"Everyday wear", "Screen/office work", "Driving", "Sports or outdoors", "Reading", "Fashion"},
	},
	{
		Type:    TypeSingle,
		Section: SectionCurrentSetup,
		Prompt:  "Are you happy with your current setup?",
		Options: []string{"Not at all 😕", "Could be better 😐", "Pretty happy 🙂", "Love it 😍"},
	},
	{
		Type:    TypeMultiple,
		Section: SectionCurrentSetup,
		Prompt:  "Do you prefer specific brands or styles?",
		Options: []string{"Ray-Ban", "Oakley", "Lindberg", "Tom Ford", "I go for comfort over brands", "Not sure / no preference"},
	},
	{
		Type:    TypeSingle,
		Section: SectionLensComfort,
		Prompt:  "Do you think you would benefit from a new pair of glasses/lenses?",
		Options: []string{"Yes, definitely", "Maybe, I'm not sure", "Probably not", "No, I'm satisfied"},
	},
	{
		Type:    TypeSingle,
		Section: SectionLensComfort,
		Prompt:  "Have your lenses been updated in the past 2 years?",
		Options: []string{"Yes", "No", "Not sure"},
	},
	{
		Type:    TypeMultiple,
		Section: SectionLensComfort,
		Prompt:  "Do you ever experience any of the following?",
		Options: []string{"Headaches", "Tired eyes", "Glare sensitivity", OptionEyeStrain, "None of these"},
	},
	{
		Type:    TypeSingle,
		Section: SectionLensComfort,
		Prompt:  "What type of lenses do you have today?",
		Options: []string{"Single vision", OptionProgressive, "Not sure"},
	},
	{
		Type:    TypeSingle,
		Section: SectionLensComfort,
		Prompt:  "How many hours per day are you in front of a screen?",
		Options: []string{"<2 hours", "2–4 hours", "5–8 hours", OptionHeavyScreen},
	},
	{
		Type:    TypeSingle,
		Section: SectionLifestyle,
		Prompt:  "Do you have issues with your current glasses while driving?",
		Options: []string{"No", "Yes", "Yes, but only at night", "I don't drive a lot"},
	},
	{
		Type:    TypeMultiple,
		Section: SectionLifestyle,
		Prompt:  "What do you usually do in your free time?",
		Options: []string{OptionPlaysSports, "Read/watch shows", "Spend time outdoors", "Travel", "Create (music, art, crafts)", "None of these"},
	},
	{
		Type:    TypeSingle,
		Section: SectionLifestyle,
		Prompt:  "Do you ever avoid wearing glasses because they get in the way of your activities?",
		Options: []string{"Yes", "Sometimes", "No"},
	},
	{
		Type:        TypeText,
		Section:     SectionLifestyle,
		Prompt:      "Tell us about your specific activities and hobbies",
		Placeholder: "e.g., tennis twice a week, coding 8+ hours daily, reading novels, cycling, gaming, cooking, woodworking, etc.",
	},
	{
		Type:    TypeSingle,
		Section: SectionSunAndStyle,
		Prompt:  "Do you wear sunglasses with prescription?",
		Options: []string{"Yes", "No, but I'd like to", "No"},
	},
	{
		Type:          TypeSlider,
		Section:       SectionSunAndStyle,
		Prompt:        "What is important for you in glasses?",
		SliderLabels:  []string{"Price", "Style"},
		SliderDefault: 50,
	},
}

// Questions returns the ordered question list. Callers must not mutate it.
func Questions() []Question {
	return questions
}

// QuestionAt returns the question for a step index, or nil when the index is
// the terminal results step or otherwise out of range.
func QuestionAt(step int) *Question {
	if step < 0 || step >= len(questions) {
		return nil
	}
	return &questions[step]
}

// Count is the number of questions including the intro step.
func Count() int {
	return len(questions)
}

// TerminalStep is the step index of the results screen, one past the last question.
func TerminalStep() int {
	return len(questions)
}
