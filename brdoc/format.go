package brdoc

// FormatCPF renders an 11-digit identifier as 000.000.000-00.
// Inputs that do not carry exactly 11 digits are returned unchanged.
func FormatCPF(raw string) string {
	d := Digits(raw)
	if len(d) != 11 {
		return raw
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders a 14-digit identifier as 00.000.000/0000-00.
// Inputs that do not carry exactly 14 digits are returned unchanged.
func FormatCNPJ(raw string) string {
	d := Digits(raw)
	if len(d) != 14 {
		return raw
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// Format picks FormatCPF or FormatCNPJ from the digit count.
func Format(raw string) string {
	switch Classify(raw) {
	case KindCPF:
		return FormatCPF(raw)
	case KindCNPJ:
		return FormatCNPJ(raw)
	default:
		return raw
	}
}
