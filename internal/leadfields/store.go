package leadfields

import (
	"context"
	"errors"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/cache"
	"conectezap-dashboard/internal/models"
	"conectezap-dashboard/internal/repository"

	"go.uber.org/zap"
)

type Storage interface {
	FetchConfiguration(ctx context.Context, accountID string) (*models.LeadFieldConfig, error)
	WriteConfiguration(ctx context.Context, rec *models.LeadFieldConfig) error
}

type Cache interface {
	Get(ctx context.Context, accountID string) (*models.LeadFieldConfig, error)
	Set(ctx context.Context, rec *models.LeadFieldConfig) error
	Add(ctx context.Context, rec *models.LeadFieldConfig) error
	Delete(ctx context.Context, accountID string) error
}

type Store struct {
	storage Storage
	cache   Cache
	log     *zap.Logger
}

// NewStore builds a Store. cache may be nil.
func NewStore(storage Storage, cache Cache, log *zap.Logger) *Store {
	return &Store{storage: storage, cache: cache, log: log}
}

// Load returns the account's configuration. An account that never saved
// gets twenty empty slots.
func (s *Store) Load(ctx context.Context, accountID string) (Configuration, error) {
	if s.cache != nil {
		rec, err := s.cache.Get(ctx, accountID)
		if err == nil {
			return FromRecord(rec), nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("lead field cache read failed", zap.String("account_id", accountID), zap.Error(err))
		}
	}

	rec, err := s.storage.FetchConfiguration(ctx, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewConfiguration(), nil
	}
	if err != nil {
		s.log.Error("lead field load failed", zap.String("account_id", accountID), zap.Error(err))
		return Configuration{}, &apperr.PersistenceError{Op: "load", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Add(ctx, rec); err != nil {
			s.log.Warn("lead field cache write failed", zap.String("account_id", accountID), zap.Error(err))
		}
	}
	return FromRecord(rec), nil
}

// Save writes all twenty slots at once. Failures are not retried.
// The saved record overwrites the cache entry; a Load that fetched
// before the write only fills the cache when it is empty, so it cannot
// put the older row back.
func (s *Store) Save(ctx context.Context, accountID string, c Configuration) error {
	rec := ToRecord(accountID, c)
	if err := s.storage.WriteConfiguration(ctx, rec); err != nil {
		s.log.Error("lead field save failed", zap.String("account_id", accountID), zap.Error(err))
		return &apperr.PersistenceError{Op: "save", Err: err}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, rec); err != nil {
			s.log.Warn("lead field cache refresh failed", zap.String("account_id", accountID), zap.Error(err))
			if err := s.cache.Delete(ctx, accountID); err != nil {
				s.log.Warn("lead field cache invalidation failed", zap.String("account_id", accountID), zap.Error(err))
			}
		}
	}
	s.log.Info("lead fields saved", zap.String("account_id", accountID))
	return nil
}
