package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contract-studio/internal/entities"
)

func newTestRenderer() *TemplateRenderer {
	return NewTemplateRenderer(newTestResolver())
}

func TestTemplateRenderer_Substitutes(t *testing.T) {
	r := newTestRenderer()
	rec := entities.Record{CustomerFIO: "Иванов Иван", CustomerPhone: "8 999 123 45 67"}

	got := r.RenderText("Заказчик: {{ customer.fio }}, тел. {{customer_phone}}.", rec)
	assert.Equal(t, "Заказчик: Иванов Иван, тел. +7 (999) 123-45-67.", got)
}

func TestTemplateRenderer_KeepsUnresolvedTokens(t *testing.T) {
	r := newTestRenderer()
	rec := entities.Record{CustomerFIO: "Иванов Иван"}

	text := "{{ customer.fio }}, ИНН {{  customer.inn }}, {{ no.such.key }}"
	once := r.RenderText(text, rec)
	assert.Equal(t, "Иванов Иван, ИНН {{  customer.inn }}, {{ no.such.key }}", once)

	// повторный рендер не меняет текст
	assert.Equal(t, once, r.RenderText(once, rec))
}

func TestTemplateRenderer_FixedPoint(t *testing.T) {
	r := newTestRenderer()
	rec := entities.NewRecord()
	rec.CustomerFIO = "Петров Пётр"
	rec.ProjectPricePerSqm = "12000"
	rec.ObjectAreaSqm = "50"
	rec.ProjectPriceTotal = "600000"

	text := "{{customer.requisites}}\n\nСостав: {{ project.deliverables }}\nИтого {{ project.price.breakdown }}"
	once := r.RenderText(text, rec)
	assert.NotContains(t, once, "{{")
	assert.Equal(t, once, r.RenderText(once, rec))
}

func TestTemplateRenderer_SinglePass(t *testing.T) {
	r := newTestRenderer()
	rec := entities.Record{CustomerFIO: "{{ customer.phone }}", CustomerPhone: "89991234567"}

	// подставленное значение повторно не сканируется
	assert.Equal(t, "{{ customer.phone }}", r.RenderText("{{ customer.fio }}", rec))
}

func TestTemplateRenderer_Report(t *testing.T) {
	r := newTestRenderer()
	rec := entities.Record{CustomerFIO: "Иванов Иван"}

	report := r.Render("{{ customer.fio }} {{customer_fio}} {{ customer.inn }} {{ customer.inn }}", rec)
	assert.Equal(t, 4, report.TokenCount)
	assert.Equal(t, []string{"customer.fio"}, report.Resolved)
	assert.Equal(t, []string{"customer.inn"}, report.Unresolved)
	assert.Equal(t, "Иванов Иван Иванов Иван {{ customer.inn }} {{ customer.inn }}", report.Text)
}

func TestTemplateRenderer_NoTokens(t *testing.T) {
	r := newTestRenderer()

	report := r.Render("Просто текст { без } плейсхолдеров {{ }}", entities.NewRecord())
	assert.Equal(t, "Просто текст { без } плейсхолдеров {{ }}", report.Text)
	assert.Zero(t, report.TokenCount)
	assert.Empty(t, report.Resolved)
	assert.Empty(t, report.Unresolved)

	assert.False(t, HasPlaceholders(report.Text))
	assert.True(t, HasPlaceholders("{{contract.date}}"))
}
