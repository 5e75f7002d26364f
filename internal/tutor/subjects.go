package tutor

type Subject string

const (
	SubjectMathematics  Subject = "mathematics"
	SubjectScience      Subject = "science"
	SubjectHistory      Subject = "history"
	SubjectSignLanguage Subject = "sign-language"
)

type VisualAid struct {
	Emoji string
	Label string
}

type SignLanguageInfo struct {
	KeyWords          string
	SimpleExplanation string
	MemoryTip         string
}

// VisualAids matches the subject exactly; anything unrecognized gets a single
// generic hint.
func (s Subject) VisualAids() []VisualAid {
	switch s {
	case SubjectMathematics:
		return []VisualAid{{Emoji: "🔢", Label: "Numbers"}, {Emoji: "➕", Label: "Add"}}
	case SubjectScience:
		return []VisualAid{{Emoji: "🔬", Label: "Microscope"}, {Emoji: "🌱", Label: "Plants"}}
	case SubjectHistory:
		return []VisualAid{{Emoji: "🏛️", Label: "Buildings"}, {Emoji: "👑", Label: "Leaders"}}
	case SubjectSignLanguage:
		return []VisualAid{{Emoji: "🤟", Label: "I Love You"}, {Emoji: "👋", Label: "Hello"}}
	default:
		return []VisualAid{{Emoji: "💡", Label: "Ideas"}}
	}
}

// SignLanguageInfo has no history entry; history falls through to the
// generic hint like any other subject.
func (s Subject) SignLanguageInfo() SignLanguageInfo {
	switch s {
	case SubjectMathematics:
		return SignLanguageInfo{KeyWords: "Numbers, Count", SimpleExplanation: "Use fingers to count", MemoryTip: "Finger counting helps!"}
	case SubjectScience:
		return SignLanguageInfo{KeyWords: "Experiment, Grow", SimpleExplanation: "Watch things change", MemoryTip: "Act out plant growth!"}
	case SubjectSignLanguage:
		return SignLanguageInfo{KeyWords: "Hello, Thank You", SimpleExplanation: "Use hands to talk", MemoryTip: "Signs look like actions!"}
	default:
		return SignLanguageInfo{KeyWords: "Learn, Question", SimpleExplanation: "Use visuals", MemoryTip: "Look and remember"}
	}
}
