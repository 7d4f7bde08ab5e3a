// Package svqanswer models the caller-side tuple of a question, a user's
// answer to it, and the salt used to derive entropy from that answer. These
// values are never persisted; only the question and salt travel into the
// sealed container.
package svqanswer

import (
	"github.com/jpfluger/svaroq/svqerr"
	"github.com/jpfluger/svaroq/svqquestion"
)

// QuestionAnswerAndSalt is the full tuple used to derive one question's
// entropy. Created from user input on the caller side.
type QuestionAnswerAndSalt struct {
	Question svqquestion.Question
	Answer   string
	Salt     svqquestion.Salt
}

// QuestionAndSalt projects out the part of this tuple that is safe to
// persist in a sealed container.
func (qas QuestionAnswerAndSalt) QuestionAndSalt() svqquestion.QuestionAndSalt {
	return svqquestion.QuestionAndSalt{Question: qas.Question, Salt: qas.Salt}
}

// AnswersAndSalts is an ordered, fixed-size collection of N
// QuestionAnswerAndSalt entries with pairwise-distinct questions.
type AnswersAndSalts struct {
	n     int
	items []QuestionAnswerAndSalt
}

// NewAnswersAndSalts builds an AnswersAndSalts of size n from items,
// deduplicating by question. Fewer than n unique questions is a
// construction error.
func NewAnswersAndSalts(n int, items []QuestionAnswerAndSalt) (AnswersAndSalts, error) {
	seen := make(map[uint16]struct{}, len(items))
	unique := make([]QuestionAnswerAndSalt, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Question.ID]; ok {
			continue
		}
		seen[it.Question.ID] = struct{}{}
		unique = append(unique, it)
	}
	if len(unique) != n {
		return AnswersAndSalts{}, svqerr.InvalidQuestionsAndAnswersCount(n, len(unique))
	}
	return AnswersAndSalts{n: n, items: unique}, nil
}

// Len returns N.
func (aas AnswersAndSalts) Len() int { return aas.n }

// Items returns the ordered entries, in a defensive copy.
func (aas AnswersAndSalts) Items() []QuestionAnswerAndSalt {
	out := make([]QuestionAnswerAndSalt, len(aas.items))
	copy(out, aas.items)
	return out
}

// QuestionsAndSalts projects every entry's QuestionAndSalt, preserving order.
func (aas AnswersAndSalts) QuestionsAndSalts() (svqquestion.QuestionsAndSalts, error) {
	projected := make([]svqquestion.QuestionAndSalt, len(aas.items))
	for i, it := range aas.items {
		projected[i] = it.QuestionAndSalt()
	}
	return svqquestion.NewQuestionsAndSalts(aas.n, projected)
}
