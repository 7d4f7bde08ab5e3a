package svqaead

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"github.com/jpfluger/svaroq/svqbytes"
	"github.com/jpfluger/svaroq/svqerr"
)

const nonceSize = 12
const tagSize = 16

// Encrypt seals plaintext under the 32-byte key with AES-256-GCM, drawing a
// fresh random 12-byte nonce from rng (DefaultRand when rng is nil). The
// returned Ciphertext's wire bytes are nonce ‖ AES-GCM(ct ‖ tag).
func Encrypt(rng io.Reader, key svqbytes.Exactly32, plaintext []byte) (Ciphertext, error) {
	if rng == nil {
		rng = DefaultRand
	}
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return Ciphertext{}, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return Ciphertext{}, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rng, nonce); err != nil {
		return Ciphertext{}, err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return NewCiphertext(sealed), nil
}

// Decrypt opens a Ciphertext under the 32-byte key, splitting the leading 12
// bytes as the nonce. Returns AEAD-bytes-too-short if the wire form is below
// nonceSize+tagSize+1 bytes, or AEAD-decryption-failed on MAC mismatch.
func Decrypt(key svqbytes.Exactly32, ct Ciphertext) ([]byte, error) {
	raw := ct.Bytes()
	if len(raw) < svqbytes.MinCiphertextLen {
		return nil, svqerr.AEADBytesTooShort(svqbytes.MinCiphertextLen, len(raw))
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, svqerr.AEADDecryptionFailed(err)
	}
	return plaintext, nil
}

// DefaultRand is the CSPRNG used for nonce generation when a caller doesn't
// supply its own io.Reader.
var DefaultRand io.Reader = rand.Reader
