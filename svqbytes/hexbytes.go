package svqbytes

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/jpfluger/svaroq/svqerr"
)

// HexBytes is a variable-length byte blob that serializes as a lowercase
// hex string. It backs the sealed container's ciphertext entries: a 12-byte
// nonce prepended to AES-GCM output (ciphertext || 16-byte tag).
type HexBytes []byte

// MinCiphertextLen is nonce(12) + tag(16) + at least 1 byte of ciphertext.
const MinCiphertextLen = 12 + 16 + 1

func HexBytesFromHex(s string) (HexBytes, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, svqerr.InvalidHex(err)
	}
	return HexBytes(b), nil
}

func (h HexBytes) Hex() string {
	return hex.EncodeToString(h)
}

func (h HexBytes) String() string {
	return h.Hex()
}

func (h HexBytes) Equal(other HexBytes) bool {
	return strings.EqualFold(h.Hex(), other.Hex())
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

func (h *HexBytes) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, err := HexBytesFromHex(s)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}
