package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"contract-studio/internal/entities"
)

func newTestMerger() *EntityMerger {
	return NewEntityMerger(zap.NewNop())
}

func TestEntityMerger_Enums(t *testing.T) {
	m := newTestMerger()
	base := entities.NewRecord()

	rec, res := m.Merge(base, map[string]interface{}{"customer_status": "ip"})
	assert.Equal(t, entities.CustomerIP, rec.CustomerStatus)
	assert.Equal(t, []string{"customer_status"}, res.Applied)

	rec, res = m.Merge(base, map[string]interface{}{"customer_status": "bogus"})
	assert.Equal(t, base, rec)
	assert.Equal(t, []string{"customer_status"}, res.Ignored)

	rec, _ = m.Merge(base, map[string]interface{}{"object_type": "  house "})
	assert.Equal(t, entities.ObjectHouse, rec.ObjectType)

	rec, _ = m.Merge(base, map[string]interface{}{"object_type": ""})
	assert.Equal(t, entities.ObjectApartment, rec.ObjectType, "пустое значение не сбрасывает выбор")

	rec, _ = m.Merge(base, map[string]interface{}{"object_type": 1.0})
	assert.Equal(t, entities.ObjectApartment, rec.ObjectType)
}

func TestEntityMerger_UnknownField(t *testing.T) {
	m := newTestMerger()
	base := entities.NewRecord()

	rec, res := m.Merge(base, map[string]interface{}{"unknown_field_xyz": "v"})
	assert.Equal(t, base, rec)
	assert.Empty(t, res.Applied)
	assert.Equal(t, []string{"unknown_field_xyz"}, res.Ignored)
}

func TestEntityMerger_Booleans(t *testing.T) {
	m := newTestMerger()

	tests := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{name: "литерал true", value: true, want: true},
		{name: "строка TRUE", value: "TRUE", want: true},
		{name: "строка False", value: " False ", want: false},
		{name: "число игнорируется", value: 1.0, want: true},
		{name: "yes игнорируется", value: "yes", want: true},
		{name: "null игнорируется", value: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := entities.Record{PaymentMethodCash: true}
			rec, _ := m.Merge(base, map[string]interface{}{"payment_method_cash": tt.value})
			assert.Equal(t, tt.want, rec.PaymentMethodCash)
		})
	}
}

func TestEntityMerger_Strings(t *testing.T) {
	m := newTestMerger()
	base := entities.Record{CustomerFIO: "было"}

	rec, _ := m.Merge(base, map[string]interface{}{
		"customer_fio":      nil,
		"object_area_sqm":   54.3,
		"object_rooms_list": []interface{}{"кухня", "спальня"},
		"project_notes":     false,
		"customer_phone":    "8 999 123-45-67",
	})
	assert.Equal(t, "было", rec.CustomerFIO)
	assert.Equal(t, "54.3", rec.ObjectAreaSqm)
	assert.Equal(t, `["кухня","спальня"]`, rec.ObjectRoomsList)
	assert.Equal(t, "false", rec.ProjectNotes)
	assert.Equal(t, "8 999 123-45-67", rec.CustomerPhone, "сырое значение хранится без форматирования")
}

func TestEntityMerger_PartialFailure(t *testing.T) {
	m := newTestMerger()

	rec, res := m.Merge(entities.NewRecord(), map[string]interface{}{
		"customer_status":     "bogus",
		"customer_fio":        "Сидоров",
		"payment_method_card": "maybe",
		"object_has_balcony":  "yes",
		"project_price":       "3500 за м2",
	})
	assert.Equal(t, entities.CustomerPerson, rec.CustomerStatus)
	assert.Equal(t, "Сидоров", rec.CustomerFIO)
	assert.True(t, rec.PaymentMethodCard)
	assert.Equal(t, entities.Yes, rec.ObjectHasBalcony)
	assert.Equal(t, []string{"customer_fio", "object_has_balcony", "project_price"}, res.Applied)
	assert.Equal(t, []string{"customer_status", "payment_method_card"}, res.Ignored)
	assert.True(t, res.TouchesTotal())
	assert.True(t, rec.Valid())
}

func TestMergeResult_TouchesTotal(t *testing.T) {
	assert.False(t, MergeResult{Applied: []string{"customer_fio", "project_price_total"}}.TouchesTotal())
	assert.True(t, MergeResult{Applied: []string{"object_area_sqm"}}.TouchesTotal())
}

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]interface{}
	}{
		{
			name: "чистый JSON",
			raw:  `{"customer_fio": "Иванов", "payment_method_cash": true}`,
			want: map[string]interface{}{"customer_fio": "Иванов", "payment_method_cash": true},
		},
		{
			name: "JSON внутри текста модели",
			raw:  "Вот результат:\n```json\n{\"object_area_sqm\": 54.3}\n```\nГотово.",
			want: map[string]interface{}{"object_area_sqm": 54.3},
		},
		{name: "мусор", raw: "не знаю", want: map[string]interface{}{}},
		{name: "битый объект", raw: `{"customer_fio": `, want: map[string]interface{}{}},
		{name: "массив", raw: `[1, 2]`, want: map[string]interface{}{}},
		{name: "пусто", raw: "  ", want: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExtraction(tt.raw))
		})
	}
}
