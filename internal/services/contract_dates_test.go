package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractDateSpans(t *testing.T) {
	text := "Срок выполнения работ: с 01.02.2026 по 10.02.2026. Договор подписан 15.01.2026."

	spans := ExtractDateSpans(text)
	require.Len(t, spans, 2)

	assert.Equal(t, DateSpanRange, spans[0].Kind)
	assert.Equal(t, day(2026, time.February, 1), spans[0].Start)
	assert.Equal(t, day(2026, time.February, 10), spans[0].End)
	assert.Equal(t, "с 01.02.2026 по 10.02.2026", spans[0].Source)

	assert.Equal(t, DateSpanDate, spans[1].Kind)
	assert.Equal(t, day(2026, time.January, 15), spans[1].Start)
	assert.Equal(t, spans[1].Start, spans[1].End)
}

func TestExtractDateSpans_Formats(t *testing.T) {
	t.Run("обратный порядок", func(t *testing.T) {
		spans := ExtractDateSpans("С 10.02.2026 до 01.02.2026")
		require.Len(t, spans, 1)
		assert.Equal(t, day(2026, time.February, 1), spans[0].Start)
		assert.Equal(t, day(2026, time.February, 10), spans[0].End)
	})

	t.Run("через тире", func(t *testing.T) {
		spans := ExtractDateSpans("этап 1: 2026-03-01 — 2026-03-05")
		require.Len(t, spans, 1)
		assert.Equal(t, DateSpanRange, spans[0].Kind)
		assert.Equal(t, day(2026, time.March, 5), spans[0].End)
	})

	t.Run("слэши", func(t *testing.T) {
		spans := ExtractDateSpans("оплата до 05/04/2026")
		require.Len(t, spans, 1)
		assert.Equal(t, day(2026, time.April, 5), spans[0].Start)
	})

	t.Run("несуществующая дата", func(t *testing.T) {
		assert.Empty(t, ExtractDateSpans("31.02.2026"))
	})

	t.Run("повторы схлопываются", func(t *testing.T) {
		spans := ExtractDateSpans("15.01.2026 и ещё раз 2026-01-15")
		require.Len(t, spans, 1)
		assert.Equal(t, "2026-01-15", spans[0].Source)
	})

	t.Run("пустой текст", func(t *testing.T) {
		assert.Empty(t, ExtractDateSpans(""))
	})
}
