package svqkdf

import (
	"testing"

	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqquestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureAnswer(answer string) svqanswer.QuestionAnswerAndSalt {
	var salt svqquestion.Salt
	salt[0] = 0x42
	return svqanswer.QuestionAnswerAndSalt{
		Question: svqquestion.FailedExam(),
		Answer:   answer,
		Salt:     salt,
	}
}

func TestDeriveEntropyDeterministic(t *testing.T) {
	a := fixtureAnswer("MIT, year 4, Python")
	e1, err := DeriveEntropy(a)
	require.NoError(t, err)
	e2, err := DeriveEntropy(a)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
}

func TestDeriveEntropyCanonicalizationEquivalence(t *testing.T) {
	e1, err := DeriveEntropy(fixtureAnswer("MIT"))
	require.NoError(t, err)
	e2, err := DeriveEntropy(fixtureAnswer("  mit  "))
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
}

func TestDeriveEntropyDomainSeparatedByPrompt(t *testing.T) {
	a := fixtureAnswer("same answer")
	b := a
	b.Question = svqquestion.ParentsMet()

	e1, err := DeriveEntropy(a)
	require.NoError(t, err)
	e2, err := DeriveEntropy(b)
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
}

func TestDeriveEntropyEmptyAnswerRejected(t *testing.T) {
	_, err := DeriveEntropy(fixtureAnswer("   "))
	require.Error(t, err)
}

func TestDeriveEntropiesPreservesOrder(t *testing.T) {
	items := []svqanswer.QuestionAnswerAndSalt{
		fixtureAnswer("one"),
		fixtureAnswer("two"),
	}
	entropies, err := DeriveEntropies(items)
	require.NoError(t, err)
	require.Len(t, entropies, 2)
	assert.NotEqual(t, entropies[0], entropies[1])
	for i, item := range items {
		want, err := DeriveEntropy(item)
		require.NoError(t, err)
		assert.Equal(t, want, entropies[i])
	}
}
