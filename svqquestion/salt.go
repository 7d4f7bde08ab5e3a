package svqquestion

import (
	"io"

	"github.com/jpfluger/svaroq/svqbytes"
)

// Salt is a 32-byte value drawn from a CSPRNG at seal time, persisted in
// the sealed container, and never regenerated on open.
type Salt = svqbytes.Exactly32

// GenerateSalt draws a fresh Salt from r (normally crypto/rand.Reader).
func GenerateSalt(r io.Reader) (Salt, error) {
	return svqbytes.NewExactly32Random(r)
}

// QuestionAndSalt binds a question to the salt generated for it at seal
// time. Stored in the sealed container so the open side receives questions
// alongside their salts.
type QuestionAndSalt struct {
	Question Question `json:"question"`
	Salt     Salt      `json:"salt"`
}
