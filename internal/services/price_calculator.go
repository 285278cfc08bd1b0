package services

import (
	"math"
	"regexp"
	"strings"

	"contract-studio/internal/entities"
	"contract-studio/pkg/utils"
)

// DefaultRateMarkers - формулировки "за квадратный метр", по которым из текстовой цены
// вытаскивается ставка. Список задаётся конфигурацией и не претендует на полноту.
var DefaultRateMarkers = []string{
	"/м2", "/м²", "/ м2", "/ м²",
	"за м2", "за м²", "за 1 м2", "за 1 м²",
	"за кв.м", "за кв. м", "за квадратный метр",
	"в м2",
	"per m2", "per m²", "per sqm", "/m2", "/m²", "/sqm",
}

// Поля, изменение которых пересчитывает итоговую стоимость.
var totalTriggerFields = map[string]bool{
	"object_area_sqm":       true,
	"project_price_per_sqm": true,
	"project_price":         true,
}

var (
	rateTokenRegexp = regexp.MustCompile(`\d+(?:[ \x{00A0}\x{202F}]\d{3})*(?:[.,]\d+)?`)
	rangeDashRegexp = regexp.MustCompile(`^\s*[-–—]\s*$`)
)

// PriceCalculator считает итог "ставка × площадь" и не перетирает ручные правки итога.
type PriceCalculator struct {
	markers []string
}

func NewPriceCalculator(markers []string) *PriceCalculator {
	if len(markers) == 0 {
		markers = DefaultRateMarkers
	}
	normalized := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			normalized = append(normalized, m)
		}
	}
	return &PriceCalculator{markers: normalized}
}

// IsTotalTrigger сообщает, нужно ли пересчитывать итог после правки поля.
func IsTotalTrigger(field string) bool {
	return totalTriggerFields[field]
}

// Rate возвращает ставку за м²: сначала из отдельного поля, затем из текстовой цены.
func (c *PriceCalculator) Rate(rec entities.Record) (float64, bool) {
	if rate, ok := utils.ParseNumber(rec.ProjectPricePerSqm); ok {
		return rate, true
	}
	return c.RateFromText(rec.ProjectPrice)
}

// RateFromText берёт ближайшее к маркеру "за м²" число: "3500 ₽ за м2" -> 3500.
// Текст без маркера ставки не содержит.
func (c *PriceCalculator) RateFromText(text string) (float64, bool) {
	lower := strings.ToLower(text)

	pos := -1
	for _, m := range c.markers {
		if i := strings.Index(lower, m); i >= 0 && (pos < 0 || i < pos) {
			pos = i
		}
	}
	if pos < 0 {
		return 0, false
	}

	head := lower[:pos]
	spans := rateTokenRegexp.FindAllStringIndex(head, -1)
	if len(spans) == 0 {
		return 0, false
	}
	last := spans[len(spans)-1]
	// "3000-4000 за м2" - диапазон, берём нижнюю границу
	if n := len(spans); n > 1 && rangeDashRegexp.MatchString(head[spans[n-2][1]:last[0]]) {
		last = spans[n-2]
	}
	return utils.ParseNumber(head[last[0]:last[1]])
}

// ComputeTotal возвращает ставку × площадь, если обе части известны и итог положителен.
func (c *PriceCalculator) ComputeTotal(rec entities.Record) (float64, bool) {
	rate, ok := c.Rate(rec)
	if !ok {
		return 0, false
	}
	area, ok := utils.ParseNumber(rec.ObjectAreaSqm)
	if !ok {
		return 0, false
	}

	total := math.Round(rate*area*100) / 100
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, false
	}
	return total, true
}

// RecomputeTotal - чистая функция пересчёта итога. lastAuto - последнее значение,
// которое система сама записала в поле итога.
//
// Итог перезаписывается, только если поле пустое или всё ещё равно lastAuto;
// значение, изменённое пользователем, остаётся нетронутым.
func (c *PriceCalculator) RecomputeTotal(rec entities.Record, lastAuto string) (entities.Record, string) {
	total, ok := c.ComputeTotal(rec)
	if !ok {
		return rec, lastAuto
	}

	current := strings.TrimSpace(rec.ProjectPriceTotal)
	if current != "" && current != lastAuto {
		return rec, lastAuto
	}

	next := utils.FormatAmount(total)
	rec.ProjectPriceTotal = next
	return rec, next
}
