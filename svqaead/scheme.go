package svqaead

import (
	"encoding/json"
	"io"

	"github.com/jpfluger/svaroq/svqbytes"
)

// Scheme is the versioned, tagged-union encryption scheme persisted inside a
// sealed container. Version1 (AES-256-GCM) is the only variant defined
// today.
type Scheme struct {
	version int
}

// NewSchemeVersion1 returns the Version1 (AES-256-GCM) encryption scheme.
func NewSchemeVersion1() Scheme {
	return Scheme{version: 1}
}

// Encrypt dispatches to the scheme's algorithm.
func (s Scheme) Encrypt(rng io.Reader, key svqbytes.Exactly32, plaintext []byte) (Ciphertext, error) {
	return Encrypt(rng, key, plaintext)
}

// Decrypt dispatches to the scheme's algorithm.
func (s Scheme) Decrypt(key svqbytes.Exactly32, ct Ciphertext) ([]byte, error) {
	return Decrypt(key, ct)
}

type wireScheme struct {
	Description string `json:"description"`
	Version     int    `json:"version"`
}

// MarshalJSON emits { description, version }. The description is purely
// informational and ignored on decode.
func (s Scheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireScheme{
		Description: "AES-256-GCM authenticated encryption",
		Version:     s.version,
	})
}

// UnmarshalJSON reads version and dispatches, ignoring description.
func (s *Scheme) UnmarshalJSON(b []byte) error {
	var w wireScheme
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	s.version = w.Version
	return nil
}
