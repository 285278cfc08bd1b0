package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"contract-studio/internal/entities"
	"contract-studio/pkg/contextkeys"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/eventbus"
)

func ctxWithUser(id uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, id)
}

// fakeTxManager выполняет функцию без транзакции.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// fakeDocumentRepo - хранилище документов и версий в памяти.
type fakeDocumentRepo struct {
	docs     map[uint64]*entities.Document
	versions []entities.DocumentVersion
	nextDoc  uint64
	nextVer  uint64
	touched  map[uint64]int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uint64]*entities.Document{}, touched: map[uint64]int{}}
}

func (r *fakeDocumentRepo) CreateDocument(_ context.Context, _ pgx.Tx, d entities.Document) (uint64, error) {
	r.nextDoc++
	d.ID = r.nextDoc
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.docs[d.ID] = &d
	return d.ID, nil
}

func (r *fakeDocumentRepo) FindDocument(_ context.Context, _ pgx.Tx, id uint64) (*entities.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *fakeDocumentRepo) ListDocuments(_ context.Context, limit, offset uint64) ([]entities.Document, uint64, error) {
	ids := make([]uint64, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]entities.Document, 0)
	for i, id := range ids {
		if uint64(i) < offset || uint64(len(out)) >= limit {
			continue
		}
		out = append(out, *r.docs[id])
	}
	return out, uint64(len(ids)), nil
}

func (r *fakeDocumentRepo) TouchDocument(_ context.Context, _ pgx.Tx, id uint64) error {
	if _, ok := r.docs[id]; !ok {
		return apperrors.ErrNotFound
	}
	r.touched[id]++
	return nil
}

func (r *fakeDocumentRepo) CreateVersion(_ context.Context, _ pgx.Tx, v entities.DocumentVersion) (*entities.DocumentVersion, error) {
	if _, ok := r.docs[v.DocumentID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	v.VersionNo = 1
	for _, existing := range r.versions {
		if existing.DocumentID == v.DocumentID && existing.VersionNo >= v.VersionNo {
			v.VersionNo = existing.VersionNo + 1
		}
	}
	r.nextVer++
	v.ID = r.nextVer
	v.CreatedAt = time.Now()
	r.versions = append(r.versions, v)
	return &v, nil
}

func (r *fakeDocumentRepo) FindVersion(_ context.Context, _ pgx.Tx, id uint64) (*entities.DocumentVersion, error) {
	for _, v := range r.versions {
		if v.ID == id {
			out := v
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeDocumentRepo) FindLatestVersion(_ context.Context, _ pgx.Tx, documentID uint64) (*entities.DocumentVersion, error) {
	var latest *entities.DocumentVersion
	for i := range r.versions {
		v := r.versions[i]
		if v.DocumentID == documentID && (latest == nil || v.VersionNo > latest.VersionNo) {
			latest = &v
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (r *fakeDocumentRepo) ListVersions(_ context.Context, documentID uint64) ([]entities.DocumentVersion, error) {
	out := make([]entities.DocumentVersion, 0)
	for _, v := range r.versions {
		if v.DocumentID == documentID {
			v.Body = ""
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VersionNo > out[j].VersionNo })
	return out, nil
}

// recordingPublisher запоминает опубликованные события.
type recordingPublisher struct {
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event eventbus.Event) {
	p.events = append(p.events, event)
}
