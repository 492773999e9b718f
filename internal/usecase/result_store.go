package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
)

// resultKeyPrefix namespaces analysis results inside the shared cache
const resultKeyPrefix = "result:"

// DefaultResultTTL is used when a store is created with a non-positive TTL
const DefaultResultTTL = 24 * time.Hour

// CacheResultStore keeps analysis results in a CacheRepository
type CacheResultStore struct {
	cache domain.CacheRepository
	ttl   time.Duration
}

// NewCacheResultStore creates a result store backed by the given cache
func NewCacheResultStore(cache domain.CacheRepository, ttl time.Duration) *CacheResultStore {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &CacheResultStore{cache: cache, ttl: ttl}
}

// Save stores a copy of the result under its id
func (s *CacheResultStore) Save(ctx context.Context, result *domain.AnalysisResult) error {
	if result == nil || result.ID == "" {
		return fmt.Errorf("%w: result id is required", domain.ErrInvalidRequest)
	}
	return s.cache.Set(ctx, resultKeyPrefix+result.ID, cloneResult(result), s.ttl)
}

// Get returns a copy of the stored result, or ErrResultNotFound
func (s *CacheResultStore) Get(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	value, err := s.cache.Get(ctx, resultKeyPrefix+id)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, id)
		}
		return nil, err
	}

	result, ok := value.(*domain.AnalysisResult)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T for %s", value, id)
	}
	return cloneResult(result), nil
}

// cloneResult copies the result and its slices so stored data cannot be mutated by callers
func cloneResult(r *domain.AnalysisResult) *domain.AnalysisResult {
	out := *r

	out.RecommendedProducts = make([]domain.RecommendedProduct, len(r.RecommendedProducts))
	for i, p := range r.RecommendedProducts {
		p.MatchReasons = cloneStrings(p.MatchReasons)
		out.RecommendedProducts[i] = p
	}

	out.UserProfile.PreferredIngredients = cloneStrings(r.UserProfile.PreferredIngredients)
	out.UserProfile.AvoidIngredients = cloneStrings(r.UserProfile.AvoidIngredients)
	out.UserProfile.Concerns = cloneStrings(r.UserProfile.Concerns)

	return &out
}

// cloneStrings copies s, keeping nil and empty distinct so JSON renders the same
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
