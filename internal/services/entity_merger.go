package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"contract-studio/internal/entities"
)

var jsonObjectRegexp = regexp.MustCompile(`(?s)\{.*\}`)

// MergeResult - какие ключи были приняты, а какие отброшены.
type MergeResult struct {
	Applied []string `json:"applied"`
	Ignored []string `json:"ignored"`
}

// TouchesTotal сообщает, задело ли слияние поля, от которых зависит итоговая стоимость.
func (m MergeResult) TouchesTotal() bool {
	for _, name := range m.Applied {
		if IsTotalTrigger(name) {
			return true
		}
	}
	return false
}

type EntityMerger struct {
	logger *zap.Logger
}

func NewEntityMerger(logger *zap.Logger) *EntityMerger {
	return &EntityMerger{logger: logger}
}

// Merge переносит в анкету значения из произвольного объекта. Неизвестные ключи и
// значения неподходящего типа пропускаются, остальные поля обновляются независимо.
func (m *EntityMerger) Merge(rec entities.Record, data map[string]interface{}) (entities.Record, MergeResult) {
	result := MergeResult{Applied: []string{}, Ignored: []string{}}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if applyValue(&rec, key, data[key]) {
			result.Applied = append(result.Applied, key)
		} else {
			result.Ignored = append(result.Ignored, key)
		}
	}

	if len(result.Ignored) > 0 {
		m.logger.Debug("часть значений не принята при слиянии анкеты", zap.Strings("ignored", result.Ignored))
	}
	return rec, result
}

func applyValue(rec *entities.Record, key string, value interface{}) bool {
	info, ok := entities.LookupField(key)
	if !ok || value == nil {
		return false
	}

	switch info.Kind {
	case entities.FieldBool:
		b, ok := toBool(value)
		if !ok {
			return false
		}
		return rec.SetBool(key, b)

	case entities.FieldEnum:
		s, ok := value.(string)
		if !ok {
			return false
		}
		s = strings.TrimSpace(s)
		for _, allowed := range info.Allowed {
			if s == allowed {
				return rec.SetEnum(key, s)
			}
		}
		return false

	default:
		return rec.SetString(key, toText(value))
	}
}

func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func toText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	default:
		return fmt.Sprint(v)
	}
}

// ParseExtraction достаёт объект из ответа модели: либо весь текст является JSON-объектом,
// либо объект взят из первой "{" до последней "}". Всё остальное даёт пустой объект.
func ParseExtraction(raw string) map[string]interface{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]interface{}{}
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err == nil && data != nil {
		return data
	}

	match := jsonObjectRegexp.FindString(raw)
	if match == "" {
		return map[string]interface{}{}
	}
	data = nil
	if err := json.Unmarshal([]byte(match), &data); err != nil || data == nil {
		return map[string]interface{}{}
	}
	return data
}
