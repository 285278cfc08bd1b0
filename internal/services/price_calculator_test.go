package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-studio/internal/entities"
	"contract-studio/pkg/utils"
)

func TestPriceCalculator_RateFromText(t *testing.T) {
	calc := NewPriceCalculator(nil)

	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{name: "за м2", text: "3500 ₽ за м2", want: 3500, wantOK: true},
		{name: "слэш и пробелы в числе", text: "от 3 500 руб/м2", want: 3500, wantOK: true},
		{name: "запятая", text: "2500,5 р. за кв.м", want: 2500.5, wantOK: true},
		{name: "регистр маркера", text: "4000 ЗА М²", want: 4000, wantOK: true},
		{name: "диапазон: нижняя граница", text: "3000-4000 за м2", want: 3000, wantOK: true},
		{name: "ближайшее к маркеру число", text: "Итого 150000 ₽, ставка 3500 ₽ за м2", want: 3500, wantOK: true},
		{name: "без маркера", text: "150000 руб", wantOK: false},
		{name: "маркер без числа", text: "договорная за м2", wantOK: false},
		{name: "пусто", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.RateFromText(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestPriceCalculator_CustomMarkers(t *testing.T) {
	calc := NewPriceCalculator([]string{" ЗА МЕТР "})

	rate, ok := calc.RateFromText("1800 за метр")
	require.True(t, ok)
	assert.Equal(t, 1800.0, rate)

	_, ok = calc.RateFromText("1800 за м2")
	assert.False(t, ok, "стандартные маркеры заменяются настроенными")
}

func TestPriceCalculator_ComputeTotal(t *testing.T) {
	calc := NewPriceCalculator(nil)

	rec := entities.Record{ProjectPricePerSqm: "3500", ObjectAreaSqm: "54.3"}
	total, ok := calc.ComputeTotal(rec)
	require.True(t, ok)
	assert.Equal(t, "190050", utils.FormatAmount(total))
	assert.Equal(t, "190 050 ₽", utils.FormatCurrency(total))

	t.Run("ставка из текстовой цены", func(t *testing.T) {
		total, ok := calc.ComputeTotal(entities.Record{ProjectPrice: "3500 ₽ за м2", ObjectAreaSqm: "54,3"})
		require.True(t, ok)
		assert.Equal(t, "190050", utils.FormatAmount(total))
	})

	t.Run("отдельное поле ставки важнее текста", func(t *testing.T) {
		total, ok := calc.ComputeTotal(entities.Record{
			ProjectPricePerSqm: "1000",
			ProjectPrice:       "3500 за м2",
			ObjectAreaSqm:      "10",
		})
		require.True(t, ok)
		assert.Equal(t, 10000.0, total)
	})

	t.Run("единицы в полях не меняют значения", func(t *testing.T) {
		tests := []struct {
			name string
			rec  entities.Record
			want string
		}{
			{"площадь с м2", entities.Record{ProjectPricePerSqm: "3500", ObjectAreaSqm: "54 м2"}, "189000"},
			{"ставка с ₽/м2", entities.Record{ProjectPricePerSqm: "3500 ₽/м2", ObjectAreaSqm: "54"}, "189000"},
			{"текстовая цена и площадь с м²", entities.Record{ProjectPrice: "3500 ₽ за м2", ObjectAreaSqm: "54,3 м²"}, "190050"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				total, ok := calc.ComputeTotal(tt.rec)
				require.True(t, ok)
				assert.Equal(t, tt.want, utils.FormatAmount(total))
			})
		}
	})

	t.Run("площадь словами не считается", func(t *testing.T) {
		_, ok := calc.ComputeTotal(entities.Record{ProjectPricePerSqm: "3500", ObjectAreaSqm: "1.5 тыс."})
		assert.False(t, ok)
	})

	t.Run("нет площади", func(t *testing.T) {
		_, ok := calc.ComputeTotal(entities.Record{ProjectPricePerSqm: "3500"})
		assert.False(t, ok)
	})

	t.Run("нулевая площадь", func(t *testing.T) {
		_, ok := calc.ComputeTotal(entities.Record{ProjectPricePerSqm: "3500", ObjectAreaSqm: "0"})
		assert.False(t, ok)
	})

	t.Run("цена без ставки", func(t *testing.T) {
		_, ok := calc.ComputeTotal(entities.Record{ProjectPrice: "150000 руб", ObjectAreaSqm: "50"})
		assert.False(t, ok)
	})
}

func TestPriceCalculator_RecomputeTotal(t *testing.T) {
	calc := NewPriceCalculator(nil)

	rec := entities.Record{ProjectPricePerSqm: "3500", ObjectAreaSqm: "54.3"}

	// пустой итог заполняется автоматически
	rec, lastAuto := calc.RecomputeTotal(rec, "")
	assert.Equal(t, "190050", rec.ProjectPriceTotal)
	assert.Equal(t, "190050", lastAuto)

	// пока итог совпадает с автоматическим, он следует за площадью
	rec.ObjectAreaSqm = "60"
	rec, lastAuto = calc.RecomputeTotal(rec, lastAuto)
	assert.Equal(t, "210000", rec.ProjectPriceTotal)
	assert.Equal(t, "210000", lastAuto)

	// ручную правку пересчёт не трогает
	rec.ProjectPriceTotal = "200000"
	rec.ObjectAreaSqm = "70"
	rec, lastAuto = calc.RecomputeTotal(rec, lastAuto)
	assert.Equal(t, "200000", rec.ProjectPriceTotal)
	assert.Equal(t, "210000", lastAuto)

	// после очистки поля автоматика снова работает
	rec.ProjectPriceTotal = ""
	rec, lastAuto = calc.RecomputeTotal(rec, lastAuto)
	assert.Equal(t, "245000", rec.ProjectPriceTotal)
	assert.Equal(t, "245000", lastAuto)
}

func TestPriceCalculator_RecomputeWithoutRate(t *testing.T) {
	calc := NewPriceCalculator(nil)

	rec := entities.Record{ProjectPrice: "150000 руб", ObjectAreaSqm: "50", ProjectPriceTotal: "150000"}
	got, lastAuto := calc.RecomputeTotal(rec, "prev")
	assert.Equal(t, rec, got)
	assert.Equal(t, "prev", lastAuto)
}

func TestIsTotalTrigger(t *testing.T) {
	assert.True(t, IsTotalTrigger("object_area_sqm"))
	assert.True(t, IsTotalTrigger("project_price_per_sqm"))
	assert.True(t, IsTotalTrigger("project_price"))
	assert.False(t, IsTotalTrigger("project_price_total"))
	assert.False(t, IsTotalTrigger("customer_fio"))
}
