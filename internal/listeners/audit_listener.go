package listeners

import (
	"context"

	"go.uber.org/zap"

	"contract-studio/internal/events"
	"contract-studio/pkg/eventbus"
)

// AuditListener пишет в лог каждую сохранённую версию документа.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.DocumentVersionCreatedEvent{}.Name(), l.handleVersionCreated)
	l.logger.Info("AuditListener подписан на событие 'document.version.created'")
}

func (l *AuditListener) handleVersionCreated(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.DocumentVersionCreatedEvent)
	if !ok {
		return nil
	}

	fields := []zap.Field{
		zap.Uint64("document_id", e.DocumentID),
		zap.Uint64("version_id", e.VersionID),
		zap.Int("version_no", e.VersionNo),
		zap.Uint64("actor_id", e.ActorID),
	}
	if e.SessionID != "" {
		fields = append(fields,
			zap.String("session_id", e.SessionID),
			zap.Uint64("parent_version_id", e.ParentVersionID),
			zap.Int("resolved", e.Resolved),
			zap.Strings("unresolved", e.Unresolved),
		)
	}
	l.logger.Info("сохранена версия документа", fields...)
	return nil
}
