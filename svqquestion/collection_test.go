package svqquestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems(n int) []QuestionAndSalt {
	bank := Default6()
	items := make([]QuestionAndSalt, 0, n)
	for i := 0; i < n; i++ {
		var salt Salt
		salt[0] = byte(i + 1)
		items = append(items, QuestionAndSalt{Question: bank[i], Salt: salt})
	}
	return items
}

func TestNewQuestionsAndSaltsExactCount(t *testing.T) {
	qs, err := NewQuestionsAndSalts(6, sampleItems(6))
	require.NoError(t, err)
	assert.Equal(t, 6, qs.Len())
}

func TestNewQuestionsAndSaltsWrongCount(t *testing.T) {
	_, err := NewQuestionsAndSalts(6, sampleItems(3))
	require.Error(t, err)
}

func TestNewQuestionsAndSaltsDeduplicates(t *testing.T) {
	items := sampleItems(6)
	items = append(items, items[0])
	qs, err := NewQuestionsAndSalts(6, items)
	require.NoError(t, err)
	assert.Equal(t, 6, qs.Len())
}

func TestQuestionsAndSaltsContains(t *testing.T) {
	items := sampleItems(6)
	qs, err := NewQuestionsAndSalts(6, items)
	require.NoError(t, err)
	assert.True(t, qs.Contains(items[0].Question))
	assert.False(t, qs.Contains(StreetAge8()))
}

func TestQuestionsAndSaltsJSONRoundtrip(t *testing.T) {
	qs, err := NewQuestionsAndSalts(6, sampleItems(6))
	require.NoError(t, err)

	b, err := json.Marshal(qs)
	require.NoError(t, err)

	var decoded QuestionsAndSalts
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, qs.Items(), decoded.Items())
}
