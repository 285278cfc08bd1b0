package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/entities"
	"contract-studio/internal/events"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/utils"
)

type documentFixture struct {
	svc       DocumentServiceInterface
	sessions  ContractSessionServiceInterface
	repo      *fakeDocumentRepo
	published *recordingPublisher
	ctx       context.Context
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	sessions, _ := newTestSessionService()
	repo := newFakeDocumentRepo()
	published := &recordingPublisher{}
	engine := NewContractEngine(nil, zap.NewNop())

	return &documentFixture{
		svc:       NewDocumentService(fakeTxManager{}, repo, sessions, engine, published, zap.NewNop()),
		sessions:  sessions,
		repo:      repo,
		published: published,
		ctx:       ctxWithUser(3),
	}
}

func (f *documentFixture) createDocument(t *testing.T, body, contentType string) *dto.DocumentVersionDTO {
	t.Helper()
	v, err := f.svc.CreateDocument(f.ctx, dto.CreateDocumentDTO{Title: " Договор ", Body: body, ContentType: contentType})
	require.NoError(t, err)
	return v
}

func (f *documentFixture) createSession(t *testing.T, data map[string]interface{}) string {
	t.Helper()
	created, err := f.sessions.Create(f.ctx)
	require.NoError(t, err)
	_, err = f.sessions.Merge(f.ctx, created.ID, dto.MergeDTO{Data: data})
	require.NoError(t, err)
	return created.ID
}

func TestDocumentService_CreateDocument(t *testing.T) {
	f := newDocumentFixture(t)

	v := f.createDocument(t, "Договор № {{ contract.number }}", "")
	assert.Equal(t, 1, v.VersionNo)
	assert.Equal(t, entities.ContentTypeText, v.ContentType)
	assert.False(t, v.ParentVersionID.Valid)

	doc, err := f.repo.FindDocument(context.Background(), nil, v.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "Договор", doc.Title)
	assert.Equal(t, int64(3), doc.CreatedBy.Int64)

	require.Len(t, f.published.events, 1)
	e := f.published.events[0].(events.DocumentVersionCreatedEvent)
	assert.Equal(t, v.ID, e.VersionID)
	assert.Empty(t, e.SessionID)
}

func TestDocumentService_CreateDocumentRequiresUser(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.CreateDocument(context.Background(), dto.CreateDocumentDTO{Title: "x", Body: "y"})
	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
	assert.Empty(t, f.repo.docs)
}

func TestDocumentService_RenderDocument(t *testing.T) {
	f := newDocumentFixture(t)
	base := f.createDocument(t, "Заказчик: {{ customer.fio }}\nИсполнитель: {{ executor_name }}", "")
	sessionID := f.createSession(t, map[string]interface{}{"customer_fio": "Петрова Анна"})

	result, err := f.svc.RenderDocument(f.ctx, base.DocumentID, dto.RenderDocumentDTO{
		SessionID: sessionID,
		Note:      null.StringFrom("первая подстановка"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Version.VersionNo)
	assert.Equal(t, "Заказчик: Петрова Анна\nИсполнитель: {{ executor_name }}", result.Version.Body)
	assert.Equal(t, int64(base.ID), result.Version.ParentVersionID.Int64)
	assert.Equal(t, sessionID, result.Version.SessionID.String)
	assert.Equal(t, "первая подстановка", result.Version.Note.String)
	assert.Equal(t, []string{"customer.fio"}, result.Resolved)
	assert.Equal(t, []string{"executor.name"}, result.Unresolved)
	assert.Equal(t, 2, result.TokenCount)
	assert.Equal(t, 1, f.repo.touched[base.DocumentID])

	// исходная версия не меняется
	original, err := f.svc.GetVersion(f.ctx, base.ID)
	require.NoError(t, err)
	assert.Equal(t, "Заказчик: {{ customer.fio }}\nИсполнитель: {{ executor_name }}", original.Body)

	require.Len(t, f.published.events, 2)
	e := f.published.events[1].(events.DocumentVersionCreatedEvent)
	assert.Equal(t, base.ID, e.ParentVersionID)
	assert.Equal(t, sessionID, e.SessionID)
	assert.Equal(t, uint64(3), e.ActorID)
	assert.Equal(t, 1, e.Resolved)
}

func TestDocumentService_RenderDocumentRerendersLatest(t *testing.T) {
	f := newDocumentFixture(t)
	base := f.createDocument(t, "{{ customer.fio }} / {{ executor.name }}", "")
	first := f.createSession(t, map[string]interface{}{"customer_fio": "Петрова Анна"})
	second := f.createSession(t, map[string]interface{}{"customer_fio": "Иванов Иван", "executor_name": "ИП Соколова"})

	_, err := f.svc.RenderDocument(f.ctx, base.DocumentID, dto.RenderDocumentDTO{SessionID: first})
	require.NoError(t, err)

	// в последней версии остался только плейсхолдер исполнителя
	result, err := f.svc.RenderDocument(f.ctx, base.DocumentID, dto.RenderDocumentDTO{SessionID: second})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Version.VersionNo)
	assert.Equal(t, "Петрова Анна / ИП Соколова", result.Version.Body)

	// явная версия берётся как основа
	result, err = f.svc.RenderDocument(f.ctx, base.DocumentID, dto.RenderDocumentDTO{
		SessionID: second,
		VersionID: null.Int64From(int64(base.ID)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван / ИП Соколова", result.Version.Body)
	assert.Equal(t, int64(base.ID), result.Version.ParentVersionID.Int64)
}

func TestDocumentService_RenderDocumentErrors(t *testing.T) {
	f := newDocumentFixture(t)
	plain := f.createDocument(t, "Текст без подстановок", "")
	binary := f.createDocument(t, "{{ customer.fio }}", "application/pdf")
	other := f.createDocument(t, "{{ customer.fio }}", "")
	sessionID := f.createSession(t, map[string]interface{}{"customer_fio": "Петрова Анна"})

	testCases := []struct {
		name       string
		documentID uint64
		request    dto.RenderDocumentDTO
		wantErr    error
	}{
		{"нет плейсхолдеров", plain.DocumentID, dto.RenderDocumentDTO{SessionID: sessionID}, apperrors.ErrNoPlaceholders},
		{"не текст", binary.DocumentID, dto.RenderDocumentDTO{SessionID: sessionID}, apperrors.ErrNotText},
		{"версия чужого документа", plain.DocumentID, dto.RenderDocumentDTO{SessionID: sessionID, VersionID: null.Int64From(int64(other.ID))}, apperrors.ErrNotFound},
		{"нет документа", 999, dto.RenderDocumentDTO{SessionID: sessionID}, apperrors.ErrNotFound},
		{"нет сессии", other.DocumentID, dto.RenderDocumentDTO{SessionID: "missing"}, apperrors.ErrSessionNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(f.repo.versions)
			_, err := f.svc.RenderDocument(f.ctx, tc.documentID, tc.request)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, f.repo.versions, before)
		})
	}
}

func TestDocumentService_Lists(t *testing.T) {
	f := newDocumentFixture(t)
	first := f.createDocument(t, "{{ customer.fio }}", "")
	f.createDocument(t, "второй", "")
	sessionID := f.createSession(t, map[string]interface{}{"customer_fio": "Петрова Анна"})
	_, err := f.svc.RenderDocument(f.ctx, first.DocumentID, dto.RenderDocumentDTO{SessionID: sessionID})
	require.NoError(t, err)

	docs, total, err := f.svc.ListDocuments(f.ctx, utils.Page{Limit: 1, Number: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, docs, 1)

	versions, err := f.svc.ListVersions(f.ctx, first.DocumentID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].VersionNo)
	assert.Empty(t, versions[0].Body)

	_, err = f.svc.ListVersions(f.ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocumentService_VersionDates(t *testing.T) {
	f := newDocumentFixture(t)
	v := f.createDocument(t, "Договор от 15.01.2026. Работы выполняются с 01.02.2026 по 10.03.2026.", "")

	spans, err := f.svc.VersionDates(f.ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.DateSpanDTO{
		{Start: "2026-02-01", End: "2026-03-10", Kind: DateSpanRange, Source: "с 01.02.2026 по 10.03.2026"},
		{Start: "2026-01-15", End: "2026-01-15", Kind: DateSpanDate, Source: "15.01.2026"},
	}, spans)

	binary := f.createDocument(t, "01.02.2026", "application/pdf")
	_, err = f.svc.VersionDates(f.ctx, binary.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotText)
}
