// Package svqaead implements the AES-256-GCM encryption scheme used to
// protect each subset key's ciphertext inside a sealed container.
package svqaead

import (
	"encoding/json"

	"github.com/jpfluger/svaroq/svqbytes"
)

// Ciphertext is the wire format nonce(12 bytes) || AES-GCM(ct || tag),
// persisted as a hex string.
type Ciphertext struct {
	bytes svqbytes.HexBytes
}

// NewCiphertext wraps raw encrypted bytes.
func NewCiphertext(b []byte) Ciphertext {
	return Ciphertext{bytes: svqbytes.HexBytes(b)}
}

// CiphertextFromHex decodes a hex-encoded ciphertext.
func CiphertextFromHex(s string) (Ciphertext, error) {
	b, err := svqbytes.HexBytesFromHex(s)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{bytes: b}, nil
}

// Bytes returns the raw wire bytes.
func (c Ciphertext) Bytes() []byte { return c.bytes }

// Hex returns the lowercase hex encoding.
func (c Ciphertext) Hex() string { return c.bytes.Hex() }

// Equal reports byte-for-byte equality.
func (c Ciphertext) Equal(other Ciphertext) bool { return c.bytes.Equal(other.bytes) }

// MarshalJSON emits the ciphertext as a hex string.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.bytes)
}

// UnmarshalJSON decodes a hex string.
func (c *Ciphertext) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &c.bytes)
}
