package game

import (
	"math/rand"
	"strings"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of a shareable session code.
const CodeLength = 6

// NewCode returns a short uppercase token for embedding in a session link.
// Codes only need to avoid collisions between a handful of concurrent casual
// games, so plain math/rand is plenty.
func NewCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// NormalizeCode upper-cases a user-supplied code so links survive
// case-mangling clients.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
