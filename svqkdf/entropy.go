// Package svqkdf derives per-question entropy from answers and combines it
// into the subset keys used to encrypt and decrypt a sealed secret.
package svqkdf

import "github.com/jpfluger/svaroq/svqbytes"

// Entropy is the 32-byte output of the per-question KDF, derived from one
// question's salt, its canonicalized answer, and its prompt text.
type Entropy = svqbytes.Exactly32

// EncryptionKey is a 32-byte AES-256-GCM key derived by XOR-combining M
// entropies. Zero it after use.
type EncryptionKey = svqbytes.Exactly32
