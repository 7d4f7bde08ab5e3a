package svqkdf

import (
	"encoding/json"
	"testing"

	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqquestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQAS(n int) []svqanswer.QuestionAnswerAndSalt {
	bank := svqquestion.Default6()
	items := make([]svqanswer.QuestionAnswerAndSalt, n)
	for i := 0; i < n; i++ {
		var salt svqquestion.Salt
		salt[0] = byte(i + 1)
		items[i] = svqanswer.QuestionAnswerAndSalt{
			Question: bank[i],
			Answer:   bank[i].ExpectedAnswerFormat.ExampleAnswer,
			Salt:     salt,
		}
	}
	return items
}

func TestSchemeDeriveKeysCount(t *testing.T) {
	scheme := NewSchemeVersion1()
	keys, err := scheme.DeriveKeys(sampleQAS(6), 4)
	require.NoError(t, err)
	assert.Equal(t, 15, len(keys))
}

func TestSchemeJSONRoundtrip(t *testing.T) {
	scheme := NewSchemeVersion1()
	b, err := json.Marshal(scheme)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Version1")

	var decoded Scheme
	require.NoError(t, json.Unmarshal(b, &decoded))
	keys1, err := scheme.DeriveKeys(sampleQAS(6), 4)
	require.NoError(t, err)
	keys2, err := decoded.DeriveKeys(sampleQAS(6), 4)
	require.NoError(t, err)
	assert.Equal(t, keys1, keys2)
}
