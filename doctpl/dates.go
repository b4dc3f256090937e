package doctpl

import (
	"fmt"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// ParseDate reads an ISO yyyy-mm-dd date as entered by date inputs.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, strings.TrimSpace(s))
	return t, err == nil
}

// ShortDate formats an ISO date as dd/mm/yyyy. Values that are not ISO
// dates are returned unchanged.
func ShortDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006")
}

// LongDate formats an ISO date as "2 de março de 2024". It returns "" for
// values that are not ISO dates.
func LongDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
