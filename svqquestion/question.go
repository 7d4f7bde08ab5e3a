// Package svqquestion models the security question itself: its identity,
// prompt text, and the metadata describing what a well-formed answer looks
// like. Questions are immutable once minted and compared structurally.
package svqquestion

// Kind categorizes a question. Freeform is the only kind defined today;
// the type exists so future kinds (e.g. multiple-choice) can be added
// without changing the wire shape of existing questions.
type Kind string

const (
	KindFreeform Kind = "Freeform"
)

// ExpectedAnswerFormat is advisory metadata describing the shape of a good
// answer. The core crypto engine never reads or enforces it; UI layers may
// use it to hint users while collecting answers.
type ExpectedAnswerFormat struct {
	AnswerStructure string   `json:"answer_structure"`
	ExampleAnswer   string   `json:"example_answer"`
	UnsafeAnswers   []string `json:"unsafe_answers"`
}

// NewExpectedAnswerFormat builds a format hint with an empty discouraged-answers list.
func NewExpectedAnswerFormat(structure, example string) ExpectedAnswerFormat {
	return ExpectedAnswerFormat{AnswerStructure: structure, ExampleAnswer: example, UnsafeAnswers: []string{}}
}

// Equal reports structural equality, including the UnsafeAnswers list.
func (f ExpectedAnswerFormat) Equal(other ExpectedAnswerFormat) bool {
	if f.AnswerStructure != other.AnswerStructure || f.ExampleAnswer != other.ExampleAnswer {
		return false
	}
	if len(f.UnsafeAnswers) != len(other.UnsafeAnswers) {
		return false
	}
	for i, v := range f.UnsafeAnswers {
		if other.UnsafeAnswers[i] != v {
			return false
		}
	}
	return true
}

// Question is a single security question presented to the user. Once
// minted, every field is immutable; equality is structural across all
// fields, including Version and ExpectedAnswerFormat. A caller that echoes
// back a Question it read from a sealed container will match; one that
// reconstructs a different Version or ExpectedAnswerFormat will not.
type Question struct {
	ID                   uint16               `json:"id"`
	Version              uint8                `json:"version"`
	Kind                 Kind                 `json:"kind"`
	Prompt               string               `json:"question"`
	ExpectedAnswerFormat ExpectedAnswerFormat `json:"expected_answer_format"`
}

// NewFreeformQuestion mints a freeform question with version 1.
func NewFreeformQuestion(id uint16, prompt string, format ExpectedAnswerFormat) Question {
	return Question{ID: id, Version: 1, Kind: KindFreeform, Prompt: prompt, ExpectedAnswerFormat: format}
}

// String returns the question's display string, used e.g. in the
// unrelated-question-provided error.
func (q Question) String() string {
	return q.Prompt
}

// Equal reports full structural equality.
func (q Question) Equal(other Question) bool {
	return q.ID == other.ID &&
		q.Version == other.Version &&
		q.Kind == other.Kind &&
		q.Prompt == other.Prompt &&
		q.ExpectedAnswerFormat.Equal(other.ExpectedAnswerFormat)
}
