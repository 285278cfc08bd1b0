package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/entities"
	"contract-studio/internal/repositories"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/utils"
)

type ContractSessionServiceInterface interface {
	Create(ctx context.Context) (*dto.SessionDTO, error)
	Get(ctx context.Context, id string) (*dto.SessionDTO, error)
	Load(ctx context.Context, id string) (*entities.ContractSession, error)
	Delete(ctx context.Context, id string) error
	UpdateField(ctx context.Context, id string, d dto.UpdateFieldDTO) (*dto.SessionDTO, error)
	Merge(ctx context.Context, id string, d dto.MergeDTO) (*dto.MergeResultDTO, error)
	Reset(ctx context.Context, id string) (*dto.SessionDTO, error)
	Preview(ctx context.Context, id string) (*dto.PreviewDTO, error)
	Render(ctx context.Context, id string, text string) (*RenderReport, error)
	Export(ctx context.Context, id string) (*dto.SessionExportDTO, error)
	Placeholders() dto.PlaceholderCatalogDTO
}

type ContractSessionService struct {
	sessionRepo repositories.SessionRepositoryInterface
	engine      *ContractEngine
	logger      *zap.Logger
}

func NewContractSessionService(
	sessionRepo repositories.SessionRepositoryInterface,
	engine *ContractEngine,
	logger *zap.Logger,
) ContractSessionServiceInterface {
	return &ContractSessionService{
		sessionRepo: sessionRepo,
		engine:      engine,
		logger:      logger,
	}
}

func (s *ContractSessionService) toDTO(session *entities.ContractSession) *dto.SessionDTO {
	display := ""
	if total, ok := utils.ParseBareNumber(session.Record.ProjectPriceTotal); ok {
		display = utils.FormatCurrency(total)
	}
	return &dto.SessionDTO{
		ID:                session.ID,
		Record:            session.Record,
		LastAutoTotal:     session.LastAutoTotal,
		PriceTotalDisplay: display,
		CreatedAt:         session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         session.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *ContractSessionService) save(ctx context.Context, session *entities.ContractSession) error {
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.logger.Error("не удалось сохранить сессию", zap.String("session_id", session.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *ContractSessionService) Create(ctx context.Context) (*dto.SessionDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entities.ContractSession{
		ID:        uuid.NewString(),
		Record:    entities.NewRecord(),
		CreatedBy: userID,
		CreatedAt: now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("создана сессия анкеты", zap.String("session_id", session.ID), zap.Uint64("user_id", userID))
	return s.toDTO(session), nil
}

func (s *ContractSessionService) Load(ctx context.Context, id string) (*entities.ContractSession, error) {
	return s.sessionRepo.FindByID(ctx, id)
}

func (s *ContractSessionService) Get(ctx context.Context, id string) (*dto.SessionDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(session), nil
}

func (s *ContractSessionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Load(ctx, id); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, id)
}

// UpdateField - правка одного поля пользователем. После правки площади, ставки или
// текстовой цены итог пересчитывается до сохранения.
func (s *ContractSessionService) UpdateField(ctx context.Context, id string, d dto.UpdateFieldDTO) (*dto.SessionDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := setField(&session.Record, d.Field, d.Value); err != nil {
		return nil, err
	}
	if IsTotalTrigger(d.Field) {
		session.Record, session.LastAutoTotal = s.engine.Prices.RecomputeTotal(session.Record, session.LastAutoTotal)
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.toDTO(session), nil
}

// Merge вливает в анкету результат извлечения: готовый объект или сырой текст ответа модели.
func (s *ContractSessionService) Merge(ctx context.Context, id string, d dto.MergeDTO) (*dto.MergeResultDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	data := d.Data
	if data == nil {
		data = ParseExtraction(d.RawText)
	}

	var result MergeResult
	session.Record, result = s.engine.Merger.Merge(session.Record, data)
	if result.TouchesTotal() {
		session.Record, session.LastAutoTotal = s.engine.Prices.RecomputeTotal(session.Record, session.LastAutoTotal)
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("данные извлечения влиты в анкету",
		zap.String("session_id", id),
		zap.Int("applied", len(result.Applied)),
		zap.Int("ignored", len(result.Ignored)),
	)
	return &dto.MergeResultDTO{
		Session: *s.toDTO(session),
		Applied: result.Applied,
		Ignored: result.Ignored,
	}, nil
}

// Reset заменяет анкету целиком значениями по умолчанию.
func (s *ContractSessionService) Reset(ctx context.Context, id string) (*dto.SessionDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Record = entities.NewRecord()
	session.LastAutoTotal = ""
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.toDTO(session), nil
}

func (s *ContractSessionService) Preview(ctx context.Context, id string) (*dto.PreviewDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	b, rec := s.engine.Blocks, session.Record
	return &dto.PreviewDTO{
		CustomerRequisites: b.CustomerRequisites(rec),
		ExecutorRequisites: b.ExecutorRequisites(rec),
		ObjectSummary:      b.ObjectSummary(rec),
		ProjectBrief:       b.ProjectBrief(rec),
		Price:              b.PriceWithBreakdown(rec),
		PaymentMethods:     b.PaymentMethodsInline(rec),
		Deliverables:       b.Deliverables(rec),
	}, nil
}

func (s *ContractSessionService) Render(ctx context.Context, id string, text string) (*RenderReport, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	report := s.engine.Renderer.Render(text, session.Record)
	return &report, nil
}

// Export собирает строки для выгрузки: все поля анкеты и все непустые плейсхолдеры.
func (s *ContractSessionService) Export(ctx context.Context, id string) (*dto.SessionExportDTO, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := session.Record

	fields := entities.Fields()
	out := &dto.SessionExportDTO{
		SessionID:    session.ID,
		FileName:     utils.Slugify(rec.ContractNumber+" "+rec.CustomerFIO, "anketa"),
		Fields:       make([]dto.ExportRowDTO, 0, len(fields)),
		Placeholders: make([]dto.ExportRowDTO, 0),
	}

	for _, f := range fields {
		value, _ := rec.Value(f.Name)
		out.Fields = append(out.Fields, dto.ExportRowDTO{Name: f.Name, Label: f.Label, Value: exportValue(value)})
	}
	for _, key := range s.engine.Resolver.Keys() {
		if value := s.engine.Resolver.Resolve(key, rec); value != "" {
			out.Placeholders = append(out.Placeholders, dto.ExportRowDTO{Name: key, Value: value})
		}
	}
	return out, nil
}

func (s *ContractSessionService) Placeholders() dto.PlaceholderCatalogDTO {
	return dto.PlaceholderCatalogDTO{
		Keys:   s.engine.Resolver.Keys(),
		Fields: entities.Fields(),
	}
}

func exportValue(v interface{}) string {
	if b, ok := v.(bool); ok {
		if b {
			return "да"
		}
		return "нет"
	}
	return fmt.Sprint(v)
}

// setField строже слияния: неизвестное поле и значение не того типа - ошибки.
// null и "" очищают строку, а enum возвращают к значению из NewRecord.
func setField(rec *entities.Record, name string, value interface{}) error {
	info, ok := entities.LookupField(name)
	if !ok {
		return apperrors.ErrUnknownField
	}

	switch info.Kind {
	case entities.FieldBool:
		b, ok := toBool(value)
		if !ok {
			return apperrors.ErrInvalidFieldType
		}
		rec.SetBool(name, b)

	case entities.FieldEnum:
		if value == nil {
			value = ""
		}
		str, ok := value.(string)
		if !ok {
			return apperrors.ErrInvalidFieldType
		}
		if str = strings.TrimSpace(str); str == "" {
			str = defaultEnum(name)
		}
		if !rec.SetEnum(name, str) {
			return apperrors.ErrInvalidFieldType
		}

	default:
		switch v := value.(type) {
		case nil:
			rec.SetString(name, "")
		case string, float64, json.Number:
			rec.SetString(name, toText(v))
		default:
			return apperrors.ErrInvalidFieldType
		}
	}
	return nil
}

func defaultEnum(name string) string {
	defaults := entities.NewRecord()
	v, _ := defaults.Value(name)
	str, _ := v.(string)
	return str
}
