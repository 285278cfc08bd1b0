package utils

import (
	"regexp"
	"strings"
)

var (
	translit = map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
		'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
		'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
		'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
		'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
		'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
		'э': "e", 'ю': "yu", 'я': "ya",
	}
	slugSepRegexp = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify делает из названия безопасное имя файла: "Договор №12/2026" -> "dogovor_12_2026".
// Пустой результат заменяется на fallback.
func Slugify(name, fallback string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if repl, ok := translit[r]; ok {
			sb.WriteString(repl)
		} else {
			sb.WriteRune(r)
		}
	}

	res := strings.Trim(slugSepRegexp.ReplaceAllString(sb.String(), "_"), "_")
	if res == "" {
		return fallback
	}
	return res
}
