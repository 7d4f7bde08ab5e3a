package svqkdf

import (
	"encoding/json"

	"github.com/jpfluger/svaroq/svqanswer"
)

// schemeVersion1 is the wire tag for the only KDF scheme version defined
// today. The sub-KDF marker objects nested under it carry no parameters in
// v1; they exist solely so a future version can add some without changing
// the tag shape.
type schemeVersion1 struct {
	EntropiesFromQuestionsAnswerAndSalt struct{} `json:"entropies_from_questions_answer_and_salt"`
	KdfEncryptionKeysFromKeyExchangeKeys struct{} `json:"kdf_encryption_keys_from_key_exchange_keys"`
}

// Scheme is the versioned, tagged-union KDF scheme persisted inside a sealed
// container. Version1 is the only variant defined today.
type Scheme struct {
	version1 *schemeVersion1
}

// NewSchemeVersion1 returns the Version1 KDF scheme.
func NewSchemeVersion1() Scheme {
	return Scheme{version1: &schemeVersion1{}}
}

// DeriveKeys runs the scheme's algorithm: apply sub-KDF A to each of the N
// inputs preserving order, then apply sub-KDF B with the (N, M) parameters.
// The per-question entropies are zeroed once sub-KDF B has consumed them;
// only the resulting subset keys survive the call.
func (s Scheme) DeriveKeys(items []svqanswer.QuestionAnswerAndSalt, m int) ([]EncryptionKey, error) {
	entropies, err := DeriveEntropies(items)
	if err != nil {
		return nil, err
	}
	defer zeroEntropies(entropies)

	return DeriveSubsetKeys(entropies, m)
}

// zeroEntropies overwrites every entropy's backing bytes. Ranging by index is
// required: Entropy is an array value, so a `for _, e := range` copy would
// zero a throwaway copy instead of the slice's actual backing storage.
func zeroEntropies(entropies []Entropy) {
	for i := range entropies {
		entropies[i].Zero()
	}
}

type wireScheme struct {
	Version1 *schemeVersion1 `json:"Version1,omitempty"`
}

// MarshalJSON emits the tagged-union shape { "Version1": { ... } }.
func (s Scheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireScheme{Version1: s.version1})
}

// UnmarshalJSON decodes the tagged-union shape, dispatching on whichever
// version key is present.
func (s *Scheme) UnmarshalJSON(b []byte) error {
	var w wireScheme
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Version1 != nil {
		s.version1 = w.Version1
		return nil
	}
	s.version1 = &schemeVersion1{}
	return nil
}
