package sales

import (
	"strings"
	"time"
)

var dobLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDateOfBirth normaliza la fecha de nacimiento a solo fecha (UTC, 00:00).
// Devuelve nil si viene vacía o no se puede interpretar.
func ParseDateOfBirth(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// NormalizePhone quita espacios y guiones del número telefónico usado como llave del cliente.
func NormalizePhone(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(s))
}
