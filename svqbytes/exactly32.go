// Package svqbytes holds the strongly typed fixed-size byte buffers used
// throughout the envelope: 32-byte salts/entropies/keys, and a variable
// length hex-serialized blob for ciphertexts. Modeled on the teacher's
// acrypt.CryptKeyBase64 wrapper-type convention, swapped to hex encoding and
// a fixed array instead of a string.
package svqbytes

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jpfluger/svaroq/svqerr"
)

// Exactly32 is a 32-byte value: a salt, a derived entropy, or an encryption
// key. It serializes as 64 lowercase hex characters.
type Exactly32 [32]byte

// NewExactly32Random draws 32 bytes from r (normally crypto/rand.Reader).
func NewExactly32Random(r io.Reader) (Exactly32, error) {
	var e Exactly32
	if _, err := io.ReadFull(r, e[:]); err != nil {
		return Exactly32{}, fmt.Errorf("generating random 32 bytes: %w", err)
	}
	return e, nil
}

// Exactly32FromHex decodes a 64-character lowercase hex string.
func Exactly32FromHex(s string) (Exactly32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Exactly32{}, svqerr.InvalidHex(err)
	}
	if len(b) != 32 {
		return Exactly32{}, svqerr.InvalidByteCount(32, len(b))
	}
	var e Exactly32
	copy(e[:], b)
	return e, nil
}

// Hex returns the lowercase hex encoding of the value.
func (e Exactly32) Hex() string {
	return hex.EncodeToString(e[:])
}

// Bytes returns a copy of the underlying bytes.
func (e Exactly32) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, e[:])
	return out
}

// XOR returns the bitwise XOR of e and other. XOR is commutative and
// associative, so the order subset members are combined in is irrelevant.
func (e Exactly32) XOR(other Exactly32) Exactly32 {
	var out Exactly32
	for i := range out {
		out[i] = e[i] ^ other[i]
	}
	return out
}

// Zero overwrites the backing array with zeros. Callers holding an entropy
// or encryption key must call this explicitly once the value is no longer
// needed; Go has no destructor to do it automatically.
func (e *Exactly32) Zero() {
	for i := range e {
		e[i] = 0
	}
}

// Equal reports whether two values are byte-identical.
func (e Exactly32) Equal(other Exactly32) bool {
	return e == other
}

func (e Exactly32) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Hex())
}

func (e *Exactly32) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, err := Exactly32FromHex(s)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
