// Package brdoc validates and formats Brazilian taxpayer identifiers.
//
// An 11-digit identifier is checked with the CPF (individual) scheme and a
// 14-digit identifier with the CNPJ (company) scheme. Both use two trailing
// check digits derived from weighted sums modulo 11.
//
// The mod-11 mapping folds two remainders onto one check digit (10 and 0 for
// CPF, 0 and 1 for CNPJ), so a single mistyped digit is not always caught.
// Changing one of the base digits yields another valid identifier exactly
// when each check-digit remainder either stays the same or moves between
// the two folded values. For example 100.000.001-08 and 200.000.001-08 are
// both valid CPFs, as are 59.557.267/8374-00 and 39.557.267/8374-00. Every
// other single-digit change is rejected.
//
// Validation is only enforced when a value is present: an empty input is
// reported as valid so optional form fields do not raise advisories.
package brdoc

import (
	"regexp"
	"strings"
)

// Kind classifies a raw identifier by its digit count.
type Kind int

const (
	KindNone    Kind = iota // empty input
	KindCPF                 // 11 digits
	KindCNPJ                // 14 digits
	KindUnknown             // any other length
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCPF:
		return "CPF"
	case KindCNPJ:
		return "CNPJ"
	default:
		return "unknown"
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Digits returns raw with every non-digit character removed.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Classify reports which checksum scheme applies to raw.
func Classify(raw string) Kind {
	if raw == "" {
		return KindNone
	}
	switch len(Digits(raw)) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// ValidNationalID reports whether raw is a well-formed CPF or CNPJ.
// Formatting characters are ignored. An empty raw value is valid.
func ValidNationalID(raw string) bool {
	if raw == "" {
		return true
	}
	d := Digits(raw)
	switch len(d) {
	case 11:
		return validCPFDigits(d)
	case 14:
		return validCNPJDigits(d)
	default:
		return false
	}
}

// ValidCPF reports whether raw holds a valid 11-digit CPF.
func ValidCPF(raw string) bool {
	d := Digits(raw)
	return len(d) == 11 && validCPFDigits(d)
}

// ValidCNPJ reports whether raw holds a valid 14-digit CNPJ.
func ValidCNPJ(raw string) bool {
	d := Digits(raw)
	return len(d) == 14 && validCNPJDigits(d)
}

// ValidEmail applies the loose address shape check used by the input forms.
// An empty raw value is valid.
func ValidEmail(raw string) bool {
	return raw == "" || emailRe.MatchString(raw)
}

func validCPFDigits(d string) bool {
	if repeated(d) {
		return false
	}
	if cpfCheckDigit(d[:9], 10) != int(d[9]-'0') {
		return false
	}
	return cpfCheckDigit(d[:10], 11) == int(d[10]-'0')
}

func cpfCheckDigit(d string, top int) int {
	if r := cpfRemainder(d, top); r < 10 {
		return r
	}
	return 0
}

// cpfRemainder weights digits from top down to 2.
func cpfRemainder(d string, top int) int {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * (top - i)
	}
	return sum * 10 % 11
}

func validCNPJDigits(d string) bool {
	if repeated(d) {
		return false
	}
	if cnpjCheckDigit(d[:12]) != int(d[12]-'0') {
		return false
	}
	return cnpjCheckDigit(d[:13]) == int(d[13]-'0')
}

func cnpjCheckDigit(d string) int {
	r := cnpjRemainder(d)
	if r < 2 {
		return 0
	}
	return 11 - r
}

// cnpjRemainder weights the rightmost digit with 2, increasing leftwards
// and wrapping back to 2 after 9.
func cnpjRemainder(d string) int {
	sum := 0
	weight := 2
	for i := len(d) - 1; i >= 0; i-- {
		sum += int(d[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	return sum % 11
}

func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
