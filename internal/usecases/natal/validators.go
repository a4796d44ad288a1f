package natal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Валидаторы ввода: чистые функции без побочных эффектов.
// Некорректный ввод - это nil/false, не ошибка.

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dottedDateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	timeRe       = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// parseDate принимает YYYY-MM-DD или DD.MM.YYYY, проверяет календарную корректность
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)

	var layout string
	switch {
	case isoDateRe.MatchString(s):
		layout = "2006-01-02"
	case dottedDateRe.MatchString(s):
		layout = "02.01.2006"
	default:
		return nil
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		// формат совпал, но календарно некорректна (например, день 32)
		return nil
	}

	return &t
}

// parseTime принимает HH:MM в 24-часовом формате
func parseTime(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)

	if !timeRe.MatchString(s) {
		return 0, 0, false
	}

	parts := strings.Split(s, ":")
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

// parsePlace разбивает свободный текст на город и страну.
// Разделители - запятая или слэш, берём максимум два непустых токена.
func parsePlace(s string) (city, country string) {
	normalized := strings.ReplaceAll(s, "/", ",")

	var parts []string
	for _, p := range strings.Split(normalized, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch {
	case len(parts) >= 2:
		return parts[0], parts[1]
	case len(parts) == 1:
		return parts[0], ""
	default:
		return "", ""
	}
}

// validTimezone структурная проверка IANA-идентификатора: ровно один "/",
// без пробельных символов. Существование зоны проверяется только при расчёте.
func validTimezone(s string) bool {
	if strings.Count(s, "/") != 1 {
		return false
	}

	return !strings.ContainsFunc(s, unicode.IsSpace)
}
