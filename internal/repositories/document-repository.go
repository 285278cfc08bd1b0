package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"contract-studio/internal/entities"
	apperrors "contract-studio/pkg/errors"
)

const (
	documentTable  = "documents"
	documentFields = "id, title, created_by, created_at, updated_at"

	versionTable       = "document_versions"
	versionFields      = "id, document_id, version_no, content_type, body, parent_version_id, session_id, note, created_by, created_at"
	versionShortFields = "id, document_id, version_no, content_type, '' AS body, parent_version_id, session_id, note, created_by, created_at"
)

type DocumentRepositoryInterface interface {
	CreateDocument(ctx context.Context, tx pgx.Tx, d entities.Document) (uint64, error)
	FindDocument(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error)
	ListDocuments(ctx context.Context, limit, offset uint64) ([]entities.Document, uint64, error)
	TouchDocument(ctx context.Context, tx pgx.Tx, id uint64) error

	CreateVersion(ctx context.Context, tx pgx.Tx, v entities.DocumentVersion) (*entities.DocumentVersion, error)
	FindVersion(ctx context.Context, tx pgx.Tx, id uint64) (*entities.DocumentVersion, error)
	FindLatestVersion(ctx context.Context, tx pgx.Tx, documentID uint64) (*entities.DocumentVersion, error)
	ListVersions(ctx context.Context, documentID uint64) ([]entities.DocumentVersion, error)
}

type documentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDocumentRepository(storage *pgxpool.Pool, logger *zap.Logger) DocumentRepositoryInterface {
	return &documentRepository{storage: storage, logger: logger}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// getQuerier - транзакция, если она есть, иначе пул
func (r *documentRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanDocument(row pgx.Row) (*entities.Document, error) {
	var d entities.Document
	if err := row.Scan(&d.ID, &d.Title, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования documents: %w", err)
	}
	return &d, nil
}

func scanVersion(row pgx.Row) (*entities.DocumentVersion, error) {
	var v entities.DocumentVersion
	err := row.Scan(
		&v.ID, &v.DocumentID, &v.VersionNo, &v.ContentType, &v.Body,
		&v.ParentVersionID, &v.SessionID, &v.Note, &v.CreatedBy, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования document_versions: %w", err)
	}
	return &v, nil
}

// ============================================================
// ДОКУМЕНТЫ
// ============================================================

func (r *documentRepository) CreateDocument(ctx context.Context, tx pgx.Tx, d entities.Document) (uint64, error) {
	query, args, err := psql().Insert(documentTable).
		Columns("title", "created_by").
		Values(d.Title, d.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки SQL для CreateDocument: %w", err)
	}

	var id uint64
	if err := r.getQuerier(tx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("не удалось создать документ: %w", err)
	}
	return id, nil
}

func (r *documentRepository) FindDocument(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error) {
	query, args, err := psql().Select(documentFields).From(documentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindDocument: %w", err)
	}
	return scanDocument(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *documentRepository) ListDocuments(ctx context.Context, limit, offset uint64) ([]entities.Document, uint64, error) {
	countQuery, countArgs, err := psql().Select("COUNT(*)").From(documentTable).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки SQL для подсчёта документов: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("не удалось посчитать документы: %w", err)
	}
	if total == 0 {
		return []entities.Document{}, 0, nil
	}

	query, args, err := psql().Select(documentFields).
		From(documentTable).
		OrderBy("updated_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки SQL для ListDocuments: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("не удалось получить документы: %w", err)
	}
	defer rows.Close()

	docs := make([]entities.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, *d)
	}
	return docs, total, rows.Err()
}

func (r *documentRepository) TouchDocument(ctx context.Context, tx pgx.Tx, id uint64) error {
	query, args, err := psql().Update(documentTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для TouchDocument: %w", err)
	}

	tag, err := r.getQuerier(tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("не удалось обновить документ %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ============================================================
// ВЕРСИИ
// ============================================================

// CreateVersion добавляет следующую по номеру версию. Строка документа блокируется
// до конца транзакции, чтобы параллельные вставки не получили один номер.
func (r *documentRepository) CreateVersion(ctx context.Context, tx pgx.Tx, v entities.DocumentVersion) (*entities.DocumentVersion, error) {
	q := r.getQuerier(tx)

	lockQuery, lockArgs, err := psql().Select("id").From(documentTable).
		Where(sq.Eq{"id": v.DocumentID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для блокировки документа: %w", err)
	}
	var lockedID uint64
	if err := q.QueryRow(ctx, lockQuery, lockArgs...).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("не удалось заблокировать документ %d: %w", v.DocumentID, err)
	}

	nextQuery, nextArgs, err := psql().Select("COALESCE(MAX(version_no), 0) + 1").
		From(versionTable).
		Where(sq.Eq{"document_id": v.DocumentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для номера версии: %w", err)
	}
	if err := q.QueryRow(ctx, nextQuery, nextArgs...).Scan(&v.VersionNo); err != nil {
		return nil, fmt.Errorf("не удалось вычислить номер версии: %w", err)
	}

	query, args, err := psql().Insert(versionTable).
		Columns("document_id", "version_no", "content_type", "body", "parent_version_id", "session_id", "note", "created_by").
		Values(v.DocumentID, v.VersionNo, v.ContentType, v.Body, v.ParentVersionID, v.SessionID, v.Note, v.CreatedBy).
		Suffix("RETURNING " + versionFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для CreateVersion: %w", err)
	}

	created, err := scanVersion(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("не удалось создать версию документа %d: %w", v.DocumentID, err)
	}
	r.logger.Debug("создана версия документа",
		zap.Uint64("document_id", created.DocumentID),
		zap.Int("version_no", created.VersionNo),
	)
	return created, nil
}

func (r *documentRepository) FindVersion(ctx context.Context, tx pgx.Tx, id uint64) (*entities.DocumentVersion, error) {
	query, args, err := psql().Select(versionFields).From(versionTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindVersion: %w", err)
	}
	return scanVersion(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *documentRepository) FindLatestVersion(ctx context.Context, tx pgx.Tx, documentID uint64) (*entities.DocumentVersion, error) {
	query, args, err := psql().Select(versionFields).
		From(versionTable).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("version_no DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindLatestVersion: %w", err)
	}
	return scanVersion(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

// ListVersions возвращает версии без текста, новые первыми.
func (r *documentRepository) ListVersions(ctx context.Context, documentID uint64) ([]entities.DocumentVersion, error) {
	query, args, err := psql().Select(versionShortFields).
		From(versionTable).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("version_no DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для ListVersions: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить версии документа %d: %w", documentID, err)
	}
	defer rows.Close()

	versions := make([]entities.DocumentVersion, 0)
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	return versions, rows.Err()
}
