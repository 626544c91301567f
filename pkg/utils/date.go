package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD para time.Time em UTC
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q, formato esperado YYYY-MM-DD", dateStr)
	}

	return date, nil
}

// StartOfDay trunca o horário mantendo o dia no fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
