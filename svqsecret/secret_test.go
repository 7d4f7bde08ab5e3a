package svqsecret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSecretRoundtrip(t *testing.T) {
	s := StringSecret("correct horse battery staple")
	b, err := s.ToBytes()
	require.NoError(t, err)

	back, err := StringSecretFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestRawBytesSecretRoundtrip(t *testing.T) {
	s := RawBytesSecret([]byte{0x01, 0x02, 0x03})
	b, err := s.ToBytes()
	require.NoError(t, err)

	back, err := RawBytesSecretFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestRawBytesSecretFromBytesIsDefensiveCopy(t *testing.T) {
	original := []byte{0x01, 0x02}
	s, err := RawBytesSecretFromBytes(original)
	require.NoError(t, err)
	original[0] = 0xff
	assert.Equal(t, byte(0x01), s[0])
}
