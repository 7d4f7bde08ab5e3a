package svqaead

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/jpfluger/svaroq/svqbytes"
	"github.com/jpfluger/svaroq/svqerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	var key svqbytes.Exactly32
	_, err := rand.Read(key[:])
	require.NoError(t, err)

	plaintext := []byte("hello, world")
	ct, err := Encrypt(rand.Reader, key, plaintext)
	require.NoError(t, err)

	decrypted, err := Decrypt(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptNonceFreshness(t *testing.T) {
	var key svqbytes.Exactly32
	_, err := rand.Read(key[:])
	require.NoError(t, err)

	ct1, err := Encrypt(rand.Reader, key, []byte("same plaintext"))
	require.NoError(t, err)
	ct2, err := Encrypt(rand.Reader, key, []byte("same plaintext"))
	require.NoError(t, err)
	assert.False(t, ct1.Equal(ct2))
}

func TestDecryptFixture(t *testing.T) {
	key, err := svqbytes.Exactly32FromHex("deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)

	ct, err := CiphertextFromHex("4c2266de48fd17a4bb52d5883751d054258755ce004154ea204a73a4c35e")
	require.NoError(t, err)

	plaintext, err := Decrypt(key, ct)
	require.NoError(t, err)
	assert.Equal(t, "abba", hexString(plaintext))
}

func hexString(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}

func TestDecryptEmptyInputTooShort(t *testing.T) {
	var key svqbytes.Exactly32
	_, err := Decrypt(key, NewCiphertext(nil))
	require.Error(t, err)
	svqErr, ok := err.(*svqerr.Error)
	require.True(t, ok)
	assert.Equal(t, svqerr.KindAEADBytesTooShort, svqErr.Kind)
	assert.Equal(t, 29, svqErr.ExpectedAtLeast)
	assert.Equal(t, 0, svqErr.Found)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	var key1, key2 svqbytes.Exactly32
	_, err := rand.Read(key1[:])
	require.NoError(t, err)
	_, err = rand.Read(key2[:])
	require.NoError(t, err)

	ct, err := Encrypt(rand.Reader, key1, []byte("secret"))
	require.NoError(t, err)

	_, err = Decrypt(key2, ct)
	require.Error(t, err)
	svqErr, ok := err.(*svqerr.Error)
	require.True(t, ok)
	assert.Equal(t, svqerr.KindAEADDecryptionFailed, svqErr.Kind)
}

func TestSchemeJSONEmitsDescriptionAndVersion(t *testing.T) {
	scheme := NewSchemeVersion1()
	b, err := json.Marshal(scheme)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"version":1`)
	assert.Contains(t, string(b), `"description"`)
}

func TestSchemeJSONDecodeIgnoresDescription(t *testing.T) {
	raw := []byte(`{"description":"something else entirely","version":1}`)
	var decoded Scheme
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var key svqbytes.Exactly32
	_, err := rand.Read(key[:])
	require.NoError(t, err)
	ct, err := decoded.Encrypt(rand.Reader, key, []byte("x"))
	require.NoError(t, err)
	plaintext, err := decoded.Decrypt(key, ct)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(plaintext, []byte("x")))
}
