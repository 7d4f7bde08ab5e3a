package svqerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"count mismatch", InvalidQuestionsAndAnswersCount(6, 3), "invalid questions and answers count: expected 6, found 3"},
		{"salt count mismatch", InvalidQuestionsAndSaltCount(6, 4), "invalid questions and salt count: expected 6, found 4"},
		{"unrelated question", UnrelatedQuestionProvided("What is your pet's name?"), "unrelated question provided: What is your pet's name?"},
		{"threshold invariant", QuestionsMustBeAtLeastAnswers(3, 4), "questions must be >= answers: questions 3, answers 4"},
		{"byte count", InvalidByteCount(32, 16), "invalid byte count: expected 32, found 16"},
		{"bytes too short", AEADBytesTooShort(29, 0), "AES bytes too short: expected at least 29, found 0"},
		{"empty answer", EmptyAnswer(), "answer cannot be empty after canonicalization"},
		{"decrypt failed", FailedToDecryptSealedSecret(), "failed to decrypt sealed secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := FailedToDecryptSealedSecret()
	assert.True(t, errors.Is(err, &Error{Kind: KindFailedToDecryptSealedSecret}))
	assert.False(t, errors.Is(err, &Error{Kind: KindEmptyAnswer}))
}

func TestErrorIsEqual(t *testing.T) {
	a := InvalidQuestionsAndAnswersCount(6, 3)
	b := InvalidQuestionsAndAnswersCount(6, 3)
	c := InvalidQuestionsAndAnswersCount(6, 4)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(errors.New("other")))
}

func TestWrappedUnderlying(t *testing.T) {
	underlying := errors.New("unexpected EOF")
	err := AEADDecryptionFailed(underlying)
	assert.Equal(t, "AES decryption failed: unexpected EOF", err.Error())
	assert.Equal(t, "unexpected EOF", err.Underlying)
}
