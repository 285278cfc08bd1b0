package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nonNumericRegexp = regexp.MustCompile(`[^0-9.,\-]`)

// FormatINN оставляет в ИНН только цифры. Длина не проверяется.
func FormatINN(raw string) string {
	return nonDigitRegexp.ReplaceAllString(raw, "")
}

// NumericPassthrough очищает число, введённое как текст: "3 500,5 руб" -> "3500.5".
// Некорректный результат не отбрасывается.
func NumericPassthrough(raw string) string {
	cleaned := nonNumericRegexp.ReplaceAllString(raw, "")
	return strings.ReplaceAll(cleaned, ",", ".")
}

const numberToken = `-?\d+(?:[ \x{00A0}\x{202F}]\d{3})*(?:[.,]\d+)?`

var (
	leadingNumberRegexp = regexp.MustCompile(`^\s*(` + numberToken + `)(.*)$`)
	bareNumberRegexp    = regexp.MustCompile(`^` + numberToken + `$`)
	// после числа допустимы только единицы измерения и валюта: "₽/м2", "руб. за кв.м", "м".
	unitTailRegexp = regexp.MustCompile(`(?i)^(?:[\s/.,]|₽|руб|rub|р|кв|за|per|м²|м2|m²|m2|sqm|м|m)*$`)
)

// ParseNumber разбирает число в начале строки: "54,3 м²" -> 54.3, "3 500 ₽/м2" -> 3500.
// Слова-множители ("тыс.", "млн") и лишние цифры делают значение нечисловым:
// ok=false, как и для пустых, битых и бесконечных значений.
func ParseNumber(raw string) (float64, bool) {
	m := leadingNumberRegexp.FindStringSubmatch(raw)
	if m == nil || !unitTailRegexp.MatchString(m[2]) {
		return 0, false
	}
	return parseToken(m[1])
}

// ParseBareNumber принимает только само число без единиц: "200 000", "1234,5".
func ParseBareNumber(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if !bareNumberRegexp.MatchString(trimmed) {
		return 0, false
	}
	return parseToken(trimmed)
}

// normalizeToken убирает разделители разрядов и меняет запятую на точку: "3 500,5" -> "3500.5".
func normalizeToken(token string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == ',':
			return '.'
		}
		return r
	}, token)
}

func parseToken(token string) (float64, bool) {
	v, err := strconv.ParseFloat(normalizeToken(token), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatAmount печатает сумму без группировки, с точностью до копеек: 190050, 1234.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatCurrency округляет до рубля и группирует разряды: 190050 -> "190 050 ₽".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	p := message.NewPrinter(language.Russian)
	grouped := p.Sprintf("%d", int64(math.Round(amount)))
	return plainSpaces(grouped) + " ₽"
}

// WithUnit добавляет единицу измерения к числу: ("54,3", "м²") -> "54.3 м²".
// Уже указанная единица не склеивается с числом: ("54 м2", "м²") -> "54 м²".
func WithUnit(raw, unit string) string {
	value := NumericPassthrough(raw)
	if m := leadingNumberRegexp.FindStringSubmatch(raw); m != nil && unitTailRegexp.MatchString(m[2]) {
		value = normalizeToken(m[1])
	}
	if value == "" {
		return ""
	}
	return value + " " + unit
}

// plainSpaces заменяет неразрывные пробелы локали на обычные.
func plainSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}
