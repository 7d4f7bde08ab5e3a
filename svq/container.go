// Package svq is the top-level facade over the security-questions sealed
// secret envelope: it wires together question+answer canonicalization, the
// two-stage key-derivation pipeline, and the AEAD layer into seal and open
// operations over a serializable Container.
package svq

import (
	"encoding/json"

	"github.com/jpfluger/svaroq/svqaead"
	"github.com/jpfluger/svaroq/svqkdf"
	"github.com/jpfluger/svaroq/svqquestion"
)

// zeroKeys overwrites every derived subset key's backing bytes once Seal or
// Open is done using them. Ranging by index is required: EncryptionKey is an
// array value, so a `for _, k := range` copy would zero a throwaway copy
// instead of the slice's actual backing storage.
func zeroKeys(keys []svqkdf.EncryptionKey) {
	for i := range keys {
		keys[i].Zero()
	}
}

// Container is the persisted sealed-secret envelope. Its wire shape is a
// flat JSON object; (N, M) are not part of the wire format, they are
// supplied by the reader and validated against the container's contents.
type Container struct {
	QuestionsAndSalts svqquestion.QuestionsAndSalts `json:"security_questions_and_salts"`
	KdfScheme         svqkdf.Scheme                 `json:"kdf_scheme"`
	EncryptionScheme  svqaead.Scheme                `json:"encryption_scheme"`
	Encryptions       []svqaead.Ciphertext          `json:"encryptions"`
}

// MarshalJSON round-trips the container as a plain object; it exists to
// keep the struct's json tags authoritative without surprises from
// embedding.
func (c Container) MarshalJSON() ([]byte, error) {
	type alias Container
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes the container without validating (N, M); callers
// validate the decoded shape against their expected (N, M) via Open.
func (c *Container) UnmarshalJSON(b []byte) error {
	type alias Container
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*c = Container(a)
	return nil
}
