package svqanswer

import (
	"testing"

	"github.com/jpfluger/svaroq/svqquestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnswers(n int) []QuestionAnswerAndSalt {
	bank := svqquestion.Default6()
	items := make([]QuestionAnswerAndSalt, 0, n)
	for i := 0; i < n; i++ {
		var salt svqquestion.Salt
		salt[0] = byte(i + 1)
		items = append(items, QuestionAnswerAndSalt{
			Question: bank[i],
			Answer:   "answer",
			Salt:     salt,
		})
	}
	return items
}

func TestNewAnswersAndSaltsExactCount(t *testing.T) {
	aas, err := NewAnswersAndSalts(6, sampleAnswers(6))
	require.NoError(t, err)
	assert.Equal(t, 6, aas.Len())
}

func TestNewAnswersAndSaltsWrongCount(t *testing.T) {
	_, err := NewAnswersAndSalts(6, sampleAnswers(3))
	require.Error(t, err)
}

func TestNewAnswersAndSaltsDeduplicates(t *testing.T) {
	items := sampleAnswers(6)
	items = append(items, items[0])
	aas, err := NewAnswersAndSalts(6, items)
	require.NoError(t, err)
	assert.Equal(t, 6, aas.Len())
}

func TestQuestionAndSaltProjection(t *testing.T) {
	items := sampleAnswers(1)
	qas := items[0].QuestionAndSalt()
	assert.Equal(t, items[0].Question, qas.Question)
	assert.Equal(t, items[0].Salt, qas.Salt)
}

func TestAnswersAndSaltsQuestionsAndSaltsProjection(t *testing.T) {
	aas, err := NewAnswersAndSalts(6, sampleAnswers(6))
	require.NoError(t, err)

	qs, err := aas.QuestionsAndSalts()
	require.NoError(t, err)
	assert.Equal(t, 6, qs.Len())

	for i, item := range aas.Items() {
		assert.True(t, qs.Contains(item.Question))
		assert.Equal(t, item.Salt, qs.Items()[i].Salt)
	}
}
