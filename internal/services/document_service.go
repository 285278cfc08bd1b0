package services

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/entities"
	"contract-studio/internal/events"
	"contract-studio/internal/repositories"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/eventbus"
	"contract-studio/pkg/utils"
)

// EventPublisher - то, что нужно сервису от шины событий.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type DocumentServiceInterface interface {
	CreateDocument(ctx context.Context, d dto.CreateDocumentDTO) (*dto.DocumentVersionDTO, error)
	ListDocuments(ctx context.Context, page utils.Page) ([]dto.DocumentDTO, uint64, error)
	ListVersions(ctx context.Context, documentID uint64) ([]dto.DocumentVersionDTO, error)
	GetVersion(ctx context.Context, versionID uint64) (*dto.DocumentVersionDTO, error)
	RenderDocument(ctx context.Context, documentID uint64, d dto.RenderDocumentDTO) (*dto.RenderDocumentResultDTO, error)
	VersionDates(ctx context.Context, versionID uint64) ([]dto.DateSpanDTO, error)
}

type DocumentService struct {
	txManager    repositories.TxManagerInterface
	documentRepo repositories.DocumentRepositoryInterface
	sessions     ContractSessionServiceInterface
	renderer     *TemplateRenderer
	bus          EventPublisher
	logger       *zap.Logger
}

func NewDocumentService(
	txManager repositories.TxManagerInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	sessions ContractSessionServiceInterface,
	engine *ContractEngine,
	bus EventPublisher,
	logger *zap.Logger,
) DocumentServiceInterface {
	return &DocumentService{
		txManager:    txManager,
		documentRepo: documentRepo,
		sessions:     sessions,
		renderer:     engine.Renderer,
		bus:          bus,
		logger:       logger,
	}
}

func documentToDTO(d entities.Document) dto.DocumentDTO {
	return dto.DocumentDTO{
		ID:        d.ID,
		Title:     d.Title,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}

func versionToDTO(v entities.DocumentVersion) dto.DocumentVersionDTO {
	return dto.DocumentVersionDTO{
		ID:              v.ID,
		DocumentID:      v.DocumentID,
		VersionNo:       v.VersionNo,
		ContentType:     v.ContentType,
		Body:            v.Body,
		ParentVersionID: v.ParentVersionID,
		SessionID:       v.SessionID,
		Note:            v.Note,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
	}
}

// CreateDocument создаёт документ сразу с первой версией текста.
func (s *DocumentService) CreateDocument(ctx context.Context, d dto.CreateDocumentDTO) (*dto.DocumentVersionDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	contentType := strings.TrimSpace(d.ContentType)
	if contentType == "" {
		contentType = entities.ContentTypeText
	}
	createdBy := null.Int64From(int64(userID))

	var version *entities.DocumentVersion
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		docID, err := s.documentRepo.CreateDocument(ctx, tx, entities.Document{
			Title:     strings.TrimSpace(d.Title),
			CreatedBy: createdBy,
		})
		if err != nil {
			return err
		}

		version, err = s.documentRepo.CreateVersion(ctx, tx, entities.DocumentVersion{
			DocumentID:  docID,
			ContentType: contentType,
			Body:        d.Body,
			CreatedBy:   createdBy,
		})
		return err
	})
	if err != nil {
		s.logger.Error("не удалось создать документ", zap.String("title", d.Title), zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.DocumentVersionCreatedEvent{
		DocumentID: version.DocumentID,
		VersionID:  version.ID,
		VersionNo:  version.VersionNo,
		ActorID:    userID,
	})

	result := versionToDTO(*version)
	return &result, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, page utils.Page) ([]dto.DocumentDTO, uint64, error) {
	docs, total, err := s.documentRepo.ListDocuments(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.DocumentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentToDTO(d))
	}
	return out, total, nil
}

func (s *DocumentService) ListVersions(ctx context.Context, documentID uint64) ([]dto.DocumentVersionDTO, error) {
	if _, err := s.documentRepo.FindDocument(ctx, nil, documentID); err != nil {
		return nil, err
	}
	versions, err := s.documentRepo.ListVersions(ctx, documentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentVersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, versionToDTO(v))
	}
	return out, nil
}

func (s *DocumentService) GetVersion(ctx context.Context, versionID uint64) (*dto.DocumentVersionDTO, error) {
	v, err := s.documentRepo.FindVersion(ctx, nil, versionID)
	if err != nil {
		return nil, err
	}
	result := versionToDTO(*v)
	return &result, nil
}

// RenderDocument подставляет анкету сессии в версию документа и сохраняет результат
// новой версией. Исходная версия не меняется.
func (s *DocumentService) RenderDocument(ctx context.Context, documentID uint64, d dto.RenderDocumentDTO) (*dto.RenderDocumentResultDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Load(ctx, d.SessionID)
	if err != nil {
		return nil, err
	}

	var (
		base    *entities.DocumentVersion
		created *entities.DocumentVersion
		report  RenderReport
	)
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if d.VersionID.Valid {
			base, err = s.documentRepo.FindVersion(ctx, tx, uint64(d.VersionID.Int64))
			if err == nil && base.DocumentID != documentID {
				err = apperrors.ErrNotFound
			}
		} else {
			base, err = s.documentRepo.FindLatestVersion(ctx, tx, documentID)
		}
		if err != nil {
			return err
		}

		if !base.IsText() {
			return apperrors.ErrNotText
		}
		if !HasPlaceholders(base.Body) {
			return apperrors.ErrNoPlaceholders
		}

		report = s.renderer.Render(base.Body, session.Record)

		created, err = s.documentRepo.CreateVersion(ctx, tx, entities.DocumentVersion{
			DocumentID:      documentID,
			ContentType:     base.ContentType,
			Body:            report.Text,
			ParentVersionID: null.Int64From(int64(base.ID)),
			SessionID:       null.StringFrom(session.ID),
			Note:            d.Note,
			CreatedBy:       null.Int64From(int64(userID)),
		})
		if err != nil {
			return err
		}
		return s.documentRepo.TouchDocument(ctx, tx, documentID)
	})
	if err != nil {
		s.logger.Warn("подстановка в документ не выполнена",
			zap.Uint64("document_id", documentID),
			zap.String("session_id", d.SessionID),
			zap.Error(err),
		)
		return nil, err
	}

	s.bus.Publish(ctx, events.DocumentVersionCreatedEvent{
		DocumentID:      documentID,
		VersionID:       created.ID,
		VersionNo:       created.VersionNo,
		ParentVersionID: base.ID,
		SessionID:       session.ID,
		ActorID:         userID,
		Resolved:        len(report.Resolved),
		Unresolved:      report.Unresolved,
	})

	return &dto.RenderDocumentResultDTO{
		Version:    versionToDTO(*created),
		Resolved:   report.Resolved,
		Unresolved: report.Unresolved,
		TokenCount: report.TokenCount,
	}, nil
}

// VersionDates находит в тексте версии даты и периоды (сроки этапов, даты договора).
func (s *DocumentService) VersionDates(ctx context.Context, versionID uint64) ([]dto.DateSpanDTO, error) {
	v, err := s.documentRepo.FindVersion(ctx, nil, versionID)
	if err != nil {
		return nil, err
	}
	if !v.IsText() {
		return nil, apperrors.ErrNotText
	}

	spans := ExtractDateSpans(v.Body)
	out := make([]dto.DateSpanDTO, 0, len(spans))
	for _, span := range spans {
		out = append(out, dto.DateSpanDTO{
			Start:  span.Start.Format("2006-01-02"),
			End:    span.End.Format("2006-01-02"),
			Kind:   span.Kind,
			Source: span.Source,
		})
	}
	return out, nil
}
