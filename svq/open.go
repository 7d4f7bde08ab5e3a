package svq

import (
	"github.com/jpfluger/svaroq/svqanswer"
	"github.com/jpfluger/svaroq/svqerr"
	"github.com/jpfluger/svaroq/svqkdf"
	"github.com/jpfluger/svaroq/svqsecret"
)

// Open attempts to recover the secret sealed inside container using items,
// a caller-supplied N-array of Question+Answer+Salt. Any M entries that
// match the original answers (after canonicalization) suffice.
//
// Steps: validate the container's shape against the caller's (n, m),
// relevance-check every caller question against the container's saved
// questions, derive the C(N, M) keys from the caller's answers, then try
// every (key, ciphertext) pair until one AEAD-decrypts and its plaintext
// reconstructs into T. If at least one ciphertext decrypted but no
// plaintext reconstructed, the last reconstruction error wins over the
// generic decryption failure.
func Open[T any](container *Container, items []svqanswer.QuestionAnswerAndSalt, n, m int, fromBytes svqsecret.FromBytes[T]) (T, error) {
	var zero T

	if got := container.QuestionsAndSalts.Len(); got != n {
		return zero, svqerr.InvalidQuestionsAndSaltCount(n, got)
	}
	if want, got := svqkdf.Binomial(n, m), len(container.Encryptions); got != want {
		return zero, svqerr.InvalidQuestionsAndAnswersCount(want, got)
	}

	answersAndSalts, err := svqanswer.NewAnswersAndSalts(n, items)
	if err != nil {
		return zero, err
	}

	for _, item := range answersAndSalts.Items() {
		if !container.QuestionsAndSalts.Contains(item.Question) {
			return zero, svqerr.UnrelatedQuestionProvided(item.Question.String())
		}
	}

	kdfScheme := container.KdfScheme
	keys, err := kdfScheme.DeriveKeys(answersAndSalts.Items(), m)
	if err != nil {
		return zero, err
	}
	defer zeroKeys(keys)

	var reconstructionErr error
	var anyDecrypted bool

	for _, key := range keys {
		for _, ct := range container.Encryptions {
			plaintext, err := container.EncryptionScheme.Decrypt(key, ct)
			if err != nil {
				continue
			}
			anyDecrypted = true

			secret, err := fromBytes(plaintext)
			if err != nil {
				reconstructionErr = svqerr.FailedToConvertBytesToSecret(err)
				continue
			}
			return secret, nil
		}
	}

	if anyDecrypted && reconstructionErr != nil {
		return zero, reconstructionErr
	}
	return zero, svqerr.FailedToDecryptSealedSecret()
}
