package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	ContentTypeText     = "text/plain"
	ContentTypeMarkdown = "text/markdown"
)

type Document struct {
	ID        uint64
	Title     string
	CreatedBy null.Int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentVersion - неизменяемая версия документа. Новая правка - новая строка.
type DocumentVersion struct {
	ID              uint64
	DocumentID      uint64
	VersionNo       int
	ContentType     string
	Body            string
	ParentVersionID null.Int64
	SessionID       null.String
	Note            null.String
	CreatedBy       null.Int64
	CreatedAt       time.Time
}

// IsText сообщает, можно ли подставлять в версию плейсхолдеры.
func (v DocumentVersion) IsText() bool {
	return v.ContentType == ContentTypeText || v.ContentType == ContentTypeMarkdown
}
