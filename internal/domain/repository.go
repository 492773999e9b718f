package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductCatalog is the read-only product source for the engine
type ProductCatalog interface {
	GetAll() []Product
}

// ResultStore persists analysis results for later retrieval by id
type ResultStore interface {
	Save(ctx context.Context, result *AnalysisResult) error
	Get(ctx context.Context, id string) (*AnalysisResult, error)
}

// AIRecommender calls a generative text/vision model and returns its raw reply
type AIRecommender interface {
	GenerateRecommendations(ctx context.Context, prompt string, image *ImageData) (string, error)
}

// DocumentExporter renders an analysis result into a downloadable document
type DocumentExporter interface {
	Export(result *AnalysisResult) ([]byte, error)
	ContentType() string
}
