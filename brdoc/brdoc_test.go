package brdoc

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestValidNationalIDVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty is optional", "", true},
		{"cpf digits", "11144477735", true},
		{"cpf formatted", "111.444.777-35", true},
		{"cpf second vector", "529.982.247-25", true},
		{"cpf wrong first check digit", "11144477745", false},
		{"cpf wrong second check digit", "11144477736", false},
		{"cnpj digits", "11222333000181", true},
		{"cnpj formatted", "11.222.333/0001-81", true},
		{"cnpj wrong check digit", "11.222.333/0001-82", false},
		{"too short", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"letters only", "abc", false},
		{"fifteen digits", "112223330001810", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNationalID(tt.in); got != tt.want {
				t.Errorf("ValidNationalID(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidNationalIDRejectsRepeatedDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		if ValidNationalID(cpf) {
			t.Errorf("repeated CPF %s accepted", cpf)
		}
		cnpj := strings.Repeat(string(d), 14)
		if ValidNationalID(cnpj) {
			t.Errorf("repeated CNPJ %s accepted", cnpj)
		}
	}
}

func TestSingleDigitFlipsAreRejected(t *testing.T) {
	for _, valid := range []string{"11144477735", "52998224725", "11222333000181"} {
		if !ValidNationalID(valid) {
			t.Fatalf("vector %s should be valid", valid)
		}
		for i := 0; i < len(valid); i++ {
			for c := byte('0'); c <= '9'; c++ {
				if c == valid[i] {
					continue
				}
				flipped := valid[:i] + string(c) + valid[i+1:]
				if ValidNationalID(flipped) {
					t.Errorf("flip of %s at %d to %c accepted: %s", valid, i, c, flipped)
				}
			}
		}
	}
}

func TestKnownCheckDigitCollisions(t *testing.T) {
	for _, pair := range [][2]string{
		{"100.000.001-08", "200.000.001-08"},
		{"59.557.267/8374-00", "39.557.267/8374-00"},
	} {
		if !ValidNationalID(pair[0]) || !ValidNationalID(pair[1]) {
			t.Errorf("%s and %s should both be valid", pair[0], pair[1])
		}
	}
}

// folded reports whether remainders a and b yield the same check digit.
func folded(a, b, x, y int) bool {
	return a == b || (a == x && b == y) || (a == y && b == x)
}

func TestSingleDigitFlipScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 14))
	randomDigits := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('0' + rng.IntN(10))
		}
		return string(b)
	}
	schemes := []struct {
		name string
		base int
		make func(base string) string
		// collides reports whether flipping base digit i of v into f keeps
		// both check digits.
		collides func(v, f string) bool
	}{
		{
			name: "CPF",
			base: 9,
			make: func(b string) string {
				b += string(rune('0' + cpfCheckDigit(b, 10)))
				return b + string(rune('0'+cpfCheckDigit(b, 11)))
			},
			collides: func(v, f string) bool {
				return folded(cpfRemainder(v[:9], 10), cpfRemainder(f[:9], 10), 0, 10) &&
					folded(cpfRemainder(v[:10], 11), cpfRemainder(f[:10], 11), 0, 10)
			},
		},
		{
			name: "CNPJ",
			base: 12,
			make: func(b string) string {
				b += string(rune('0' + cnpjCheckDigit(b)))
				return b + string(rune('0'+cnpjCheckDigit(b)))
			},
			collides: func(v, f string) bool {
				return folded(cnpjRemainder(v[:12]), cnpjRemainder(f[:12]), 0, 1) &&
					folded(cnpjRemainder(v[:13]), cnpjRemainder(f[:13]), 0, 1)
			},
		},
	}
	for _, sc := range schemes {
		t.Run(sc.name, func(t *testing.T) {
			collisions := 0
			for n := 0; n < 2000; n++ {
				v := sc.make(randomDigits(sc.base))
				if repeated(v) {
					continue
				}
				if !ValidNationalID(v) {
					t.Fatalf("generated %s is invalid", v)
				}
				for i := 0; i < len(v); i++ {
					for c := byte('0'); c <= '9'; c++ {
						if c == v[i] {
							continue
						}
						f := v[:i] + string(c) + v[i+1:]
						want := i < sc.base && !repeated(f) && sc.collides(v, f)
						if got := ValidNationalID(f); got != want {
							t.Fatalf("flip of %s at %d to %c: valid = %v, want %v", v, i, c, got, want)
						}
						if want {
							collisions++
						}
					}
				}
			}
			if collisions == 0 {
				t.Error("scan found no collisions")
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]Kind{
		"":                   KindNone,
		"111.444.777-35":     KindCPF,
		"11.222.333/0001-81": KindCNPJ,
		"123":                KindUnknown,
	}
	for in, want := range tests {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSchemeSpecificValidators(t *testing.T) {
	if !ValidCPF("111.444.777-35") || ValidCPF("11222333000181") || ValidCPF("") {
		t.Error("ValidCPF accepted or rejected the wrong inputs")
	}
	if !ValidCNPJ("11222333000181") || ValidCNPJ("11144477735") || ValidCNPJ("") {
		t.Error("ValidCNPJ accepted or rejected the wrong inputs")
	}
}

func TestValidEmail(t *testing.T) {
	tests := map[string]bool{
		"":                   true,
		"maria@example.com":  true,
		"a@b.c":              true,
		"maria":              false,
		"maria@example":      false,
		"ma ria@example.com": false,
		"@example.com":       false,
	}
	for in, want := range tests {
		if got := ValidEmail(in); got != want {
			t.Errorf("ValidEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format("11144477735"); got != "111.444.777-35" {
		t.Errorf("Format CPF = %q", got)
	}
	if got := Format("11222333000181"); got != "11.222.333/0001-81" {
		t.Errorf("Format CNPJ = %q", got)
	}
	if got := Format("12-34"); got != "12-34" {
		t.Errorf("Format should leave unknown input untouched, got %q", got)
	}
}
