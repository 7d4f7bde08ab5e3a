package svq

import (
	"io"

	"github.com/jpfluger/svaroq/svqaead"
	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqerr"
	"github.com/jpfluger/svaroq/svqkdf"
	"github.com/jpfluger/svaroq/svqsecret"
)

// Seal wraps secret under every M-subset of per-question entropy derived
// from items, an N-array of Question+Answer+Salt. Any M correct answers
// out of N later suffice to Open it.
//
// Steps: project the Question+Salt pairs (rejecting duplicate questions),
// derive the C(N, M) subset keys, serialize the secret to bytes, then
// encrypt the bytes under each subset key, deduplicating the resulting
// ciphertexts as an insertion-ordered set.
func Seal[T svqsecret.ByteConvertible](rng io.Reader, secret T, items []svqanswer.QuestionAnswerAndSalt, n, m int) (*Container, error) {
	answersAndSalts, err := svqanswer.NewAnswersAndSalts(n, items)
	if err != nil {
		return nil, err
	}

	questionsAndSalts, err := answersAndSalts.QuestionsAndSalts()
	if err != nil {
		return nil, err
	}

	kdfScheme := svqkdf.NewSchemeVersion1()
	keys, err := kdfScheme.DeriveKeys(answersAndSalts.Items(), m)
	if err != nil {
		return nil, err
	}
	defer zeroKeys(keys)

	plaintext, err := secret.ToBytes()
	if err != nil {
		return nil, svqerr.FailedToConvertSecretToBytes(err)
	}

	encryptionScheme := svqaead.NewSchemeVersion1()
	seen := make(map[string]struct{}, len(keys))
	ciphertexts := make([]svqaead.Ciphertext, 0, len(keys))
	for _, key := range keys {
		ct, err := encryptionScheme.Encrypt(rng, key, plaintext)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[ct.Hex()]; ok {
			continue
		}
		seen[ct.Hex()] = struct{}{}
		ciphertexts = append(ciphertexts, ct)
	}

	return &Container{
		QuestionsAndSalts: questionsAndSalts,
		KdfScheme:         kdfScheme,
		EncryptionScheme:  encryptionScheme,
		Encryptions:       ciphertexts,
	}, nil
}
