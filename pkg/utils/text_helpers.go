package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineBreakRegexp = regexp.MustCompile(`\r\n|\r|\n`)
	listSepRegexp   = regexp.MustCompile(`[,;]|\r\n|\r|\n`)
)

// NormalizeSpaces схлопывает любые пробельные последовательности в один пробел.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitLines делит текст только по переводам строк. Пустые строки выбрасываются.
func SplitLines(s string) []string {
	return splitNonEmpty(lineBreakRegexp.Split(s, -1))
}

// SplitList делит свободный список по запятым, точкам с запятой и переводам строк.
func SplitList(s string) []string {
	return splitNonEmpty(listSepRegexp.Split(s, -1))
}

func splitNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := NormalizeSpaces(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ShortFIO сокращает ФИО до "Фамилия И. О.".
func ShortFIO(fio string) string {
	parts := strings.Fields(fio)
	if len(parts) == 0 {
		return ""
	}

	out := []string{parts[0]}
	for i := 1; i < len(parts) && i < 3; i++ {
		r, _ := utf8.DecodeRuneInString(parts[i])
		out = append(out, strings.ToUpper(string(r))+".")
	}
	return strings.Join(out, " ")
}

// JoinNonEmpty склеивает непустые значения через sep.
func JoinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}
