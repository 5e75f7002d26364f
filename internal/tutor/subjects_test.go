package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectVisualAids(t *testing.T) {
	tests := []struct {
		subject Subject
		labels  []string
	}{
		{SubjectMathematics, []string{"Numbers", "Add"}},
		{SubjectScience, []string{"Microscope", "Plants"}},
		{SubjectHistory, []string{"Buildings", "Leaders"}},
		{SubjectSignLanguage, []string{"I Love You", "Hello"}},
		{"general", []string{"Ideas"}},
		{"Mathematics", []string{"Ideas"}},
		{"", []string{"Ideas"}},
	}

	for _, test := range tests {
		var labels []string
		for _, aid := range test.subject.VisualAids() {
			assert.NotEmpty(t, aid.Emoji)
			labels = append(labels, aid.Label)
		}
		assert.Equal(t, test.labels, labels, "subject %q", test.subject)
	}
}

func TestSubjectSignLanguageInfo(t *testing.T) {
	assert.Equal(t, "Numbers, Count", SubjectMathematics.SignLanguageInfo().KeyWords)
	assert.Equal(t, "Act out plant growth!", SubjectScience.SignLanguageInfo().MemoryTip)
	assert.Equal(t, "Use hands to talk", SubjectSignLanguage.SignLanguageInfo().SimpleExplanation)

	generic := SignLanguageInfo{KeyWords: "Learn, Question", SimpleExplanation: "Use visuals", MemoryTip: "Look and remember"}
	assert.Equal(t, generic, SubjectHistory.SignLanguageInfo())
	assert.Equal(t, generic, Subject("art").SignLanguageInfo())
}
