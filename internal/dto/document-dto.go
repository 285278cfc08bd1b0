package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateDocumentDTO struct {
	Title       string `json:"title" validate:"required,not_blank,max=255"`
	Body        string `json:"body" validate:"required"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
}

// RenderDocumentDTO - подстановка анкеты сессии в версию документа.
// Без version_id берётся последняя версия.
type RenderDocumentDTO struct {
	SessionID string      `json:"session_id" validate:"required,uuid"`
	VersionID null.Int64  `json:"version_id" validate:"omitempty,gt=0"`
	Note      null.String `json:"note" validate:"omitempty,max=500"`
}

type DocumentDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type DocumentVersionDTO struct {
	ID              uint64      `json:"id"`
	DocumentID      uint64      `json:"document_id"`
	VersionNo       int         `json:"version_no"`
	ContentType     string      `json:"content_type"`
	Body            string      `json:"body,omitempty"`
	ParentVersionID null.Int64  `json:"parent_version_id"`
	SessionID       null.String `json:"session_id"`
	Note            null.String `json:"note"`
	CreatedAt       string      `json:"created_at"`
}

type RenderDocumentResultDTO struct {
	Version    DocumentVersionDTO `json:"version"`
	Resolved   []string           `json:"resolved"`
	Unresolved []string           `json:"unresolved"`
	TokenCount int                `json:"token_count"`
}

type DateSpanDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
}
