// Package extenso spells out currency amounts in Brazilian Portuguese
// ("valor por extenso"), as printed next to numeric values on receipts and
// contracts.
//
// Only whole parts up to 999 999 are spelled; larger values fall back to
// their digit string.
package extenso

import (
	"strconv"
	"strings"
)

var (
	units    = [...]string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	teens    = [...]string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	tens     = [...]string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	hundreds = [...]string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// Limit is the first whole value that is no longer spelled out.
const Limit = 1000000

// Integer spells n in words. Zero yields the empty string, which lets
// callers compose clauses without a dangling "zero".
func Integer(n int) string {
	switch {
	case n <= 0:
		return ""
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		w := tens[n/10]
		if u := n % 10; u != 0 {
			w += " e " + Integer(u)
		}
		return w
	case n < 1000:
		if n == 100 {
			return "cem"
		}
		w := hundreds[n/100]
		if r := n % 100; r != 0 {
			w += " e " + Integer(r)
		}
		return w
	case n < Limit:
		q, r := n/1000, n%1000
		w := "mil"
		if q != 1 {
			w = Integer(q) + " mil"
		}
		if r != 0 {
			if r < 100 || r%100 == 0 {
				w += " e "
			} else {
				w += " "
			}
			w += Integer(r)
		}
		return w
	default:
		return strconv.Itoa(n)
	}
}

// Amount spells a decimal amount of reais. The value may use a comma as
// decimal separator; when both '.' and ',' appear the dots are treated as
// thousands separators. Empty or unparseable input yields "".
//
//	Amount("1")       // "um real"
//	Amount("1500,00") // "mil e quinhentos reais"
//	Amount("1,50")    // "um real e cinquenta centavos"
func Amount(value string) string {
	whole, cents, ok := split(value)
	if !ok {
		return ""
	}
	return compose(whole, cents)
}

// AmountFloat spells v after rounding it to cents.
func AmountFloat(v float64) string {
	if v < 0 {
		return ""
	}
	return Amount(strconv.FormatFloat(v, 'f', 2, 64))
}

func compose(whole string, cents int) string {
	if whole == "0" && cents == 0 {
		return "zero reais"
	}
	var b strings.Builder
	if whole != "0" {
		if n, err := strconv.Atoi(whole); err == nil {
			b.WriteString(Integer(n))
		} else {
			// Beyond int range; same fallback as Integer above Limit.
			b.WriteString(whole)
		}
		if whole == "1" {
			b.WriteString(" real")
		} else {
			b.WriteString(" reais")
		}
	}
	if cents > 0 {
		if whole != "0" {
			b.WriteString(" e ")
		}
		b.WriteString(Integer(cents))
		if cents == 1 {
			b.WriteString(" centavo")
		} else {
			b.WriteString(" centavos")
		}
	}
	return b.String()
}

// split parses value into the whole reais, as a digit string without
// leading zeros, and the cents. It does not go through a float and rounds
// half up on the third decimal digit.
func split(value string) (whole string, cents int, ok bool) {
	s := normalize(value)
	if s == "" {
		return "", 0, false
	}
	whole, frac, _ := strings.Cut(s, ".")
	if !allDigits(whole) || !allDigits(frac) || whole+frac == "" {
		return "", 0, false
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	frac += "000"
	c := int(frac[0]-'0')*10 + int(frac[1]-'0')
	if frac[2] >= '5' {
		c++
	}
	if c == 100 {
		whole = increment(whole)
		c = 0
	}
	return whole, c, true
}

// increment adds one to a decimal digit string.
func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

func normalize(value string) string {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "+")
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
