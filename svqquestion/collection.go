package svqquestion

import (
	"encoding/json"

	"github.com/jpfluger/svaroq/svqerr"
)

// QuestionsAndSalts is an ordered, fixed-size collection of N
// QuestionAndSalt entries with pairwise-distinct questions. It is the
// security_questions_and_salts array persisted inside a sealed container.
type QuestionsAndSalts struct {
	n     int
	items []QuestionAndSalt
}

// NewQuestionsAndSalts builds a QuestionsAndSalts of size n from items,
// deduplicating by question. Fewer than n unique questions is a
// construction error.
func NewQuestionsAndSalts(n int, items []QuestionAndSalt) (QuestionsAndSalts, error) {
	seen := make(map[uint16]struct{}, len(items))
	unique := make([]QuestionAndSalt, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Question.ID]; ok {
			continue
		}
		seen[it.Question.ID] = struct{}{}
		unique = append(unique, it)
	}
	if len(unique) != n {
		return QuestionsAndSalts{}, svqerr.InvalidQuestionsAndSaltCount(n, len(unique))
	}
	return QuestionsAndSalts{n: n, items: unique}, nil
}

// Len returns N.
func (qs QuestionsAndSalts) Len() int { return qs.n }

// Items returns the ordered entries. The returned slice is a copy; mutating
// it does not affect the collection.
func (qs QuestionsAndSalts) Items() []QuestionAndSalt {
	out := make([]QuestionAndSalt, len(qs.items))
	copy(out, qs.items)
	return out
}

// Contains reports whether q matches one of the stored questions by full
// structural equality.
func (qs QuestionsAndSalts) Contains(q Question) bool {
	for _, it := range qs.items {
		if it.Question.Equal(q) {
			return true
		}
	}
	return false
}

// MarshalJSON emits a plain JSON array, matching the container's
// security_questions_and_salts field shape.
func (qs QuestionsAndSalts) MarshalJSON() ([]byte, error) {
	return json.Marshal(qs.items)
}

// UnmarshalJSON decodes a JSON array without validating N or deduplicating;
// Len reports the decoded length, which svq.Open compares against the N it
// is called with.
func (qs *QuestionsAndSalts) UnmarshalJSON(b []byte) error {
	var items []QuestionAndSalt
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	qs.items = items
	qs.n = len(items)
	return nil
}
