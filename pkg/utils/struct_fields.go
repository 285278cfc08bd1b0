package utils

import (
	"reflect"
	"strings"
)

// JSONField - экспортируемое поле структуры вместе с именем из json-тега.
type JSONField struct {
	Name  string
	Index int
	Field reflect.StructField
}

// JSONFields перечисляет поля структуры в порядке объявления.
// Поля без json-тега или с "-" пропускаются.
func JSONFields(t reflect.Type) []JSONField {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]JSONField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, JSONField{Name: name, Index: i, Field: f})
	}
	return fields
}
