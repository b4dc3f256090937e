package doctpl

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// TokenSource produces the opaque code printed in authentication stamps.
//
// Tokens are cosmetic: they are not signed, not recorded anywhere and
// cannot be verified. Nothing may rely on them for tamper evidence.
type TokenSource interface {
	Token(at time.Time) string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(at time.Time) string

func (f TokenFunc) Token(at time.Time) string { return f(at) }

// FixedToken always returns s.
func FixedToken(s string) TokenSource {
	return TokenFunc(func(time.Time) string { return s })
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomTokens is the default TokenSource. It uses math/rand/v2 and is not
// cryptographically secure.
var RandomTokens TokenSource = TokenFunc(randomToken)

// randomToken returns DIGITAL-<8 base36 chars>-<unix millis in base36>.
func randomToken(at time.Time) string {
	var b strings.Builder
	b.WriteString("DIGITAL-")
	for i := 0; i < 8; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	b.WriteByte('-')
	b.WriteString(strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36)))
	return b.String()
}
