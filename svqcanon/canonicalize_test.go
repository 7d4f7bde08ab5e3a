package svqcanon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimScenario(t *testing.T) {
	in := "FoO\nB.a\tR ' ! FiZz ? ‘ B ’ u＇ZZ"
	assert.Equal(t, "foobarfizzbuzz", Trim(in))
}

func TestCanonicalizeEquivalence(t *testing.T) {
	variants := []string{
		"London, 1973",
		"london, 1973",
		"  london,   1973  ",
		"London, 1973.",
		"London, 1973!",
		"'London, 1973'",
	}

	var canonicalForms [][]byte
	for _, v := range variants {
		b, err := Canonicalize(v)
		require.NoError(t, err)
		canonicalForms = append(canonicalForms, b)
	}
	for i := 1; i < len(canonicalForms); i++ {
		assert.Equal(t, canonicalForms[0], canonicalForms[i], "variant %q should canonicalize identically", variants[i])
	}
}

func TestCanonicalizeEmptyAnswerRejected(t *testing.T) {
	for _, in := range []string{"", "   ", "...", "'\"'"} {
		_, err := Canonicalize(in)
		require.Error(t, err)
	}
}

func TestCanonicalizeQuoteVariants(t *testing.T) {
	forms := []string{"John's", "John’s", "John‘s", "John\"s", "John＇s"}
	var canonical []byte
	for i, f := range forms {
		b, err := Canonicalize(f)
		require.NoError(t, err)
		if i == 0 {
			canonical = b
		} else {
			assert.Equal(t, canonical, b)
		}
	}
	assert.Equal(t, "johns", string(canonical))
}
