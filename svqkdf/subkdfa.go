package svqkdf

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqcanon"
)

// DeriveEntropy runs sub-KDF A: HKDF-SHA-256 with salt = the question's
// 32-byte salt, IKM = the canonicalized answer bytes, info = the raw
// question prompt UTF-8 bytes. Deterministic given identical inputs;
// domain-separated by info.
func DeriveEntropy(qas svqanswer.QuestionAnswerAndSalt) (Entropy, error) {
	ikm, err := svqcanon.Canonicalize(qas.Answer)
	if err != nil {
		return Entropy{}, err
	}

	reader := hkdf.New(sha256.New, ikm, qas.Salt.Bytes(), []byte(qas.Question.Prompt))
	var entropy Entropy
	if _, err := io.ReadFull(reader, entropy[:]); err != nil {
		return Entropy{}, err
	}
	return entropy, nil
}

// DeriveEntropies applies DeriveEntropy to each input in order, returning a
// slice of the same length.
func DeriveEntropies(items []svqanswer.QuestionAnswerAndSalt) ([]Entropy, error) {
	entropies := make([]Entropy, len(items))
	for i, item := range items {
		e, err := DeriveEntropy(item)
		if err != nil {
			return nil, err
		}
		entropies[i] = e
	}
	return entropies, nil
}
