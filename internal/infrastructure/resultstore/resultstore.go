// Package resultstore keeps recent classification results in memory so the
// API can return them by id until they expire.
package resultstore

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"house_classifier/internal/domain"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
)

type Store struct {
	cache *cache.Cache
}

// New creates a store whose entries live for ttl. Expired entries are purged
// every ttl.
func New(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, ttl)}
}

func (s *Store) Save(_ context.Context, result entity.Result) error {
	s.cache.SetDefault(result.ID.String(), result)
	return nil
}

func (s *Store) Get(_ context.Context, id value.ResultID) (entity.Result, error) {
	item, ok := s.cache.Get(id.String())
	if !ok {
		return entity.Result{}, domain.NewResultNotFoundError(id.String())
	}

	result, ok := item.(entity.Result)
	if !ok {
		return entity.Result{}, domain.NewResultNotFoundError(id.String())
	}

	return result, nil
}
