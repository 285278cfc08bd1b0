package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"contract-studio/internal/entities"
	apperrors "contract-studio/pkg/errors"
)

const sessionKeyPrefix = "contract:session:"

type SessionRepositoryInterface interface {
	Save(ctx context.Context, session *entities.ContractSession) error
	FindByID(ctx context.Context, id string) (*entities.ContractSession, error)
	Delete(ctx context.Context, id string) error
}

// sessionRepository хранит сессии целиком одним JSON-значением с TTL.
type sessionRepository struct {
	cache  CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewSessionRepository(cache CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) SessionRepositoryInterface {
	return &sessionRepository{cache: cache, ttl: ttl, logger: logger}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *sessionRepository) Save(ctx context.Context, session *entities.ContractSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать сессию %s: %w", session.ID, err)
	}
	if err := r.cache.Set(ctx, sessionKey(session.ID), payload, r.ttl); err != nil {
		return fmt.Errorf("не удалось сохранить сессию %s: %w", session.ID, err)
	}
	return nil
}

// FindByID читает сессию и продлевает ей TTL.
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*entities.ContractSession, error) {
	raw, err := r.cache.Get(ctx, sessionKey(id))
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("не удалось прочитать сессию %s: %w", id, err)
	}

	var session entities.ContractSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("повреждённая сессия %s: %w", id, err)
	}
	if !session.Record.Valid() {
		r.logger.Warn("в сохранённой анкете недопустимое значение enum", zap.String("session_id", id))
		return nil, fmt.Errorf("повреждённая сессия %s: недопустимое значение enum", id)
	}

	if _, err := r.cache.Expire(ctx, sessionKey(id), r.ttl); err != nil {
		r.logger.Warn("не удалось продлить TTL сессии", zap.String("session_id", id), zap.Error(err))
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Del(ctx, sessionKey(id))
}
