// Package svqsample provides deterministic fixture data for tests and
// demos: a standard N=6 question-answer-salt set, an alternate set over a
// different six questions, and an all-wrong-answers variant of the
// standard set.
package svqsample

import (
	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqquestion"
)

// saltWord builds a deterministic 32-byte salt by repeating a 2-byte word,
// named after its hex spelling for readability in fixtures (e.g. saltWord
// 0xAC, 0xED repeats to "acedaced...").
func saltWord(hi, lo byte) svqquestion.Salt {
	var s svqquestion.Salt
	for i := 0; i < len(s); i += 2 {
		s[i] = hi
		s[i+1] = lo
	}
	return s
}

// Standard returns the standard N=6 question-answer-salt sample set, drawn
// from the first six questions in the bank.
func Standard() []svqanswer.QuestionAnswerAndSalt {
	return []svqanswer.QuestionAnswerAndSalt{
		{Question: svqquestion.FailedExam(), Answer: "MIT, year 4, Python", Salt: saltWord(0xac, 0xed)},
		{Question: svqquestion.ParentsMet(), Answer: "London, 1973", Salt: saltWord(0xba, 0xbe)},
		{Question: svqquestion.FirstConcert(), Answer: "Jean-Michel Jarre, Paris La Défense, 1990", Salt: saltWord(0xca, 0xfe)},
		{Question: svqquestion.FirstKissWhom(), Answer: "John Doe", Salt: saltWord(0xde, 0xad)},
		{Question: svqquestion.FirstKissLocation(), Answer: "Behind the shed in the oak tree forest.", Salt: saltWord(0xec, 0xad)},
		{Question: svqquestion.SpouseMet(), Answer: "Tokyo, 1989", Salt: saltWord(0xfa, 0xde)},
	}
}

// Other returns an alternate N=6 sample set over a disjoint set of
// questions, used to exercise the unrelated-question-provided path.
func Other() []svqanswer.QuestionAnswerAndSalt {
	return []svqanswer.QuestionAnswerAndSalt{
		{Question: svqquestion.ChildMiddleName(), Answer: "Joe", Salt: saltWord(0xac, 0xed)},
		{Question: svqquestion.StuffedAnimal(), Answer: "Bobby", Salt: saltWord(0xba, 0xbe)},
		{Question: svqquestion.OldestCousin(), Answer: "Roxanne", Salt: saltWord(0xca, 0xfe)},
		{Question: svqquestion.TeacherGrade3(), Answer: "Ali", Salt: saltWord(0xde, 0xad)},
		{Question: svqquestion.AppliedUniNoAttend(), Answer: "Oxford", Salt: saltWord(0xec, 0xad)},
		{Question: svqquestion.FirstSchool(), Answer: "Hogwartz", Salt: saltWord(0xfa, 0xde)},
	}
}

// WrongAnswers returns the standard sample set with every answer replaced
// by a uniform wrong answer, used to exercise the failed-to-decrypt path.
func WrongAnswers() []svqanswer.QuestionAnswerAndSalt {
	items := Standard()
	wrong := make([]svqanswer.QuestionAnswerAndSalt, len(items))
	for i, item := range items {
		item.Answer = "Wrong answer"
		wrong[i] = item
	}
	return wrong
}

// PartiallyWrong returns a 4-element subset of the standard sample set
// (for N=4, M=3 fixtures) with the first answer replaced by a wrong one.
func PartiallyWrong() []svqanswer.QuestionAnswerAndSalt {
	items := Standard()[:4]
	out := make([]svqanswer.QuestionAnswerAndSalt, len(items))
	copy(out, items)
	out[0].Answer = "Incorrect answer for Q0"
	return out
}
