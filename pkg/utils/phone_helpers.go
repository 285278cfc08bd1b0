package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegexp = regexp.MustCompile(`\D`)
	httpURLRegexp  = regexp.MustCompile(`(?i)^https?://`)
)

// FormatPhone приводит российский номер к виду +7 (XXX) XXX-XX-XX.
// Номера другой длины возвращаются как ввёл пользователь (без лишних пробелов по краям).
func FormatPhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	digits := nonDigitRegexp.ReplaceAllString(trimmed, "")
	if len(digits) != 11 || (digits[0] != '7' && digits[0] != '8') {
		return trimmed
	}
	d := "7" + digits[1:]
	return "+7 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:9] + "-" + d[9:11]
}

// FormatEmail только нормализует пробелы и регистр, формат не проверяется.
func FormatEmail(raw string) string {
	return strings.ToLower(NormalizeSpaces(raw))
}

// FormatTelegram добавляет "@" к нику, ссылки и готовые ники не трогает.
func FormatTelegram(raw string) string {
	value := NormalizeSpaces(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "@") || isHTTPURL(value) {
		return value
	}
	return "@" + value
}

// FormatWhatsApp принимает либо ссылку (wa.me и т.п.), либо номер телефона.
func FormatWhatsApp(raw string) string {
	value := NormalizeSpaces(raw)
	if value == "" {
		return ""
	}
	if isHTTPURL(value) {
		return value
	}
	if phone := FormatPhone(value); phone != "" {
		return phone
	}
	return value
}

func isHTTPURL(s string) bool {
	return httpURLRegexp.MatchString(s)
}
