package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu       sync.Mutex
	data     map[string]interface{}
	ttls     map[string]time.Duration
	getError error
	setError error
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
		ttls: make(map[string]time.Duration),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID:                    "rec_123",
		SkinConditionAnalysis: "Combination skin",
		RecommendedProducts: []domain.RecommendedProduct{
			{Name: "Niacinamide 10% Serum", MatchReasons: []string{"Suitable for Combination skin"}},
		},
		Source: domain.SourceEngine,
		UserProfile: domain.ProfileSummary{
			SkinType: "Combination",
			Concerns: []string{"Excess oil"},
		},
	}
}

func TestNewCacheResultStore(t *testing.T) {
	t.Run("defaults ttl", func(t *testing.T) {
		s := NewCacheResultStore(NewMockCacheRepository(), 0)
		if s.ttl != DefaultResultTTL {
			t.Errorf("ttl = %v, want %v", s.ttl, DefaultResultTTL)
		}
	})

	t.Run("keeps custom ttl", func(t *testing.T) {
		s := NewCacheResultStore(NewMockCacheRepository(), time.Hour)
		if s.ttl != time.Hour {
			t.Errorf("ttl = %v, want 1h", s.ttl)
		}
	})
}

func TestCacheResultStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMockCacheRepository()
	store := NewCacheResultStore(cache, time.Hour)

	original := sampleResult()
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if cache.ttls["result:rec_123"] != time.Hour {
		t.Errorf("stored ttl = %v, want 1h", cache.ttls["result:rec_123"])
	}

	got, err := store.Get(ctx, "rec_123")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SkinConditionAnalysis != "Combination skin" {
		t.Errorf("SkinConditionAnalysis = %q", got.SkinConditionAnalysis)
	}

	t.Run("stored copy is isolated from caller mutation", func(t *testing.T) {
		original.RecommendedProducts[0].MatchReasons[0] = "mutated"
		got.UserProfile.Concerns[0] = "mutated"

		again, err := store.Get(ctx, "rec_123")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if again.RecommendedProducts[0].MatchReasons[0] != "Suitable for Combination skin" {
			t.Error("stored match reasons were mutated through the saved pointer")
		}
		if again.UserProfile.Concerns[0] != "Excess oil" {
			t.Error("stored concerns were mutated through a returned copy")
		}
	})
}

func TestCacheResultStore_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		store := NewCacheResultStore(NewMockCacheRepository(), time.Hour)
		err := store.Save(ctx, &domain.AnalysisResult{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("Save() error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		store := NewCacheResultStore(NewMockCacheRepository(), time.Hour)
		_, err := store.Get(ctx, "rec_missing")
		if !errors.Is(err, domain.ErrResultNotFound) {
			t.Errorf("Get() error = %v, want ErrResultNotFound", err)
		}
	})

	t.Run("cache failure is passed through", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.getError = errors.New("backend down")
		store := NewCacheResultStore(cache, time.Hour)

		_, err := store.Get(ctx, "rec_123")
		if err == nil || errors.Is(err, domain.ErrResultNotFound) {
			t.Errorf("Get() error = %v, want backend error", err)
		}
	})

	t.Run("unexpected cached type", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.data["result:rec_bad"] = "not a result"
		store := NewCacheResultStore(cache, time.Hour)

		if _, err := store.Get(ctx, "rec_bad"); err == nil {
			t.Error("expected error for unexpected cached type")
		}
	})
}

func TestCacheResultStore_KeepsEmptyLists(t *testing.T) {
	ctx := context.Background()
	store := NewCacheResultStore(NewMockCacheRepository(), time.Hour)

	original := &domain.AnalysisResult{
		ID: "rec_empty",
		RecommendedProducts: []domain.RecommendedProduct{
			{Name: "Gentle Foaming Cleanser", MatchReasons: []string{}},
		},
		UserProfile: domain.ProfileSummary{
			SkinType:             "Normal",
			PreferredIngredients: []string{},
			AvoidIngredients:     []string{},
			Concerns:             []string{"Maintenance"},
		},
	}
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, "rec_empty")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want, _ := json.Marshal(original)
	have, _ := json.Marshal(got)
	if string(have) != string(want) {
		t.Errorf("stored JSON differs\n got: %s\nwant: %s", have, want)
	}
}

func TestCloneStrings(t *testing.T) {
	if cloneStrings(nil) != nil {
		t.Error("cloneStrings(nil) should stay nil")
	}
	if got := cloneStrings([]string{}); got == nil || len(got) != 0 {
		t.Errorf("cloneStrings([]) = %#v, want empty non-nil slice", got)
	}
}
