// Package svqerr defines the error taxonomy for the security-questions
// sealed-secret envelope. A single tagged Error type carries one Kind plus
// whatever structured fields that kind needs, so callers can branch on Kind
// and tests can compare errors by value instead of by message string.
package svqerr

import "fmt"

// Kind identifies one of the error cases the envelope can surface.
type Kind string

const (
	KindInvalidQuestionsAndAnswersCount Kind = "invalid_questions_and_answers_count"
	KindInvalidQuestionsAndSaltCount    Kind = "invalid_questions_and_salt_count"
	KindUnrelatedQuestionProvided       Kind = "unrelated_question_provided"
	KindQuestionsMustBeAtLeastAnswers   Kind = "questions_must_be_at_least_answers"
	KindInvalidByteCount                Kind = "invalid_byte_count"
	KindAEADDecryptionFailed            Kind = "aead_decryption_failed"
	KindAEADBytesTooShort               Kind = "aead_bytes_too_short"
	KindEmptyAnswer                      Kind = "empty_answer"
	KindFailedToConvertSecretToBytes    Kind = "failed_to_convert_secret_to_bytes"
	KindFailedToConvertBytesToSecret    Kind = "failed_to_convert_bytes_to_secret"
	KindInvalidHex                       Kind = "invalid_hex"
	KindFailedToDecryptSealedSecret      Kind = "failed_to_decrypt_sealed_secret"
)

// Error is the single result/error type for the envelope. Only the fields
// relevant to Kind are populated; the rest stay at their zero value.
type Error struct {
	Kind Kind

	// Count-mismatch fields (InvalidQuestionsAndAnswersCount, InvalidQuestionsAndSaltCount, InvalidByteCount).
	Expected int
	Found    int

	// QuestionsMustBeAtLeastAnswers fields.
	Questions int
	Answers   int

	// AEADBytesTooShort field.
	ExpectedAtLeast int

	// UnrelatedQuestionProvided field: the offending question's display string.
	Question string

	// Underlying carries the wrapped library/deserialization message for
	// kinds that surface a nested failure reason.
	Underlying string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidQuestionsAndAnswersCount:
		return fmt.Sprintf("invalid questions and answers count: expected %d, found %d", e.Expected, e.Found)
	case KindInvalidQuestionsAndSaltCount:
		return fmt.Sprintf("invalid questions and salt count: expected %d, found %d", e.Expected, e.Found)
	case KindUnrelatedQuestionProvided:
		return fmt.Sprintf("unrelated question provided: %s", e.Question)
	case KindQuestionsMustBeAtLeastAnswers:
		return fmt.Sprintf("questions must be >= answers: questions %d, answers %d", e.Questions, e.Answers)
	case KindInvalidByteCount:
		return fmt.Sprintf("invalid byte count: expected %d, found %d", e.Expected, e.Found)
	case KindAEADDecryptionFailed:
		return fmt.Sprintf("AES decryption failed: %s", e.Underlying)
	case KindAEADBytesTooShort:
		return fmt.Sprintf("AES bytes too short: expected at least %d, found %d", e.ExpectedAtLeast, e.Found)
	case KindEmptyAnswer:
		return "answer cannot be empty after canonicalization"
	case KindFailedToConvertSecretToBytes:
		return fmt.Sprintf("failed to convert secret to bytes: %s", e.Underlying)
	case KindFailedToConvertBytesToSecret:
		return fmt.Sprintf("failed to convert bytes to secret: %s", e.Underlying)
	case KindInvalidHex:
		return fmt.Sprintf("invalid hex: %s", e.Underlying)
	case KindFailedToDecryptSealedSecret:
		return "failed to decrypt sealed secret"
	default:
		return fmt.Sprintf("svqerr: unknown error kind %q", e.Kind)
	}
}

// Is lets errors.Is match on Kind alone, the way callers typically want to
// branch: errors.Is(err, &svqerr.Error{Kind: svqerr.KindFailedToDecryptSealedSecret}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsEqual compares two Errors field-for-field, used by tests that need full
// structural equality rather than just a Kind match.
func (e *Error) IsEqual(other error) bool {
	o, ok := other.(*Error)
	if !ok {
		return false
	}
	if e == nil || o == nil {
		return e == nil && o == nil
	}
	return *e == *o
}

func InvalidQuestionsAndAnswersCount(expected, found int) *Error {
	return &Error{Kind: KindInvalidQuestionsAndAnswersCount, Expected: expected, Found: found}
}

func InvalidQuestionsAndSaltCount(expected, found int) *Error {
	return &Error{Kind: KindInvalidQuestionsAndSaltCount, Expected: expected, Found: found}
}

func UnrelatedQuestionProvided(question string) *Error {
	return &Error{Kind: KindUnrelatedQuestionProvided, Question: question}
}

func QuestionsMustBeAtLeastAnswers(questions, answers int) *Error {
	return &Error{Kind: KindQuestionsMustBeAtLeastAnswers, Questions: questions, Answers: answers}
}

func InvalidByteCount(expected, found int) *Error {
	return &Error{Kind: KindInvalidByteCount, Expected: expected, Found: found}
}

func AEADDecryptionFailed(underlying error) *Error {
	return &Error{Kind: KindAEADDecryptionFailed, Underlying: underlying.Error()}
}

func AEADBytesTooShort(expectedAtLeast, found int) *Error {
	return &Error{Kind: KindAEADBytesTooShort, ExpectedAtLeast: expectedAtLeast, Found: found}
}

func EmptyAnswer() *Error {
	return &Error{Kind: KindEmptyAnswer}
}

func FailedToConvertSecretToBytes(underlying error) *Error {
	return &Error{Kind: KindFailedToConvertSecretToBytes, Underlying: underlying.Error()}
}

func FailedToConvertBytesToSecret(underlying error) *Error {
	return &Error{Kind: KindFailedToConvertBytesToSecret, Underlying: underlying.Error()}
}

func InvalidHex(underlying error) *Error {
	return &Error{Kind: KindInvalidHex, Underlying: underlying.Error()}
}

func FailedToDecryptSealedSecret() *Error {
	return &Error{Kind: KindFailedToDecryptSealedSecret}
}
