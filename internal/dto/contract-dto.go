package dto

import (
	"contract-studio/internal/entities"
)

// UpdateFieldDTO - правка одного поля анкеты пользователем.
type UpdateFieldDTO struct {
	Field string      `json:"field" validate:"required,record_field"`
	Value interface{} `json:"value"`
}

// MergeDTO - данные извлечения: готовый объект или сырой ответ модели.
type MergeDTO struct {
	Data    map[string]interface{} `json:"data" validate:"required_without=RawText"`
	RawText string                 `json:"raw_text" validate:"required_without=Data"`
}

type RenderTextDTO struct {
	Text string `json:"text" validate:"required"`
}

type SessionDTO struct {
	ID                string          `json:"id"`
	Record            entities.Record `json:"record"`
	LastAutoTotal     string          `json:"last_auto_total"`
	PriceTotalDisplay string          `json:"price_total_display"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type MergeResultDTO struct {
	Session SessionDTO `json:"session"`
	Applied []string   `json:"applied"`
	Ignored []string   `json:"ignored"`
}

// PreviewDTO - готовые блоки договора для живого предпросмотра.
type PreviewDTO struct {
	CustomerRequisites string `json:"customer_requisites"`
	ExecutorRequisites string `json:"executor_requisites"`
	ObjectSummary      string `json:"object_summary"`
	ProjectBrief       string `json:"project_brief"`
	Price              string `json:"price"`
	PaymentMethods     string `json:"payment_methods"`
	Deliverables       string `json:"deliverables"`
}

type PlaceholderCatalogDTO struct {
	Keys   []string             `json:"keys"`
	Fields []entities.FieldInfo `json:"fields"`
}

// ExportRowDTO - строка выгрузки: имя (поле или ключ), подпись и значение.
type ExportRowDTO struct {
	Name  string
	Label string
	Value string
}

type SessionExportDTO struct {
	SessionID    string
	FileName     string
	Fields       []ExportRowDTO
	Placeholders []ExportRowDTO
}
