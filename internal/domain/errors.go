package domain

import "errors"

var (
	// ErrInvalidRequest is returned when required questionnaire fields are missing
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrResultNotFound is returned when no stored analysis exists for an id
	ErrResultNotFound = errors.New("result not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrAIUnavailable is returned when the generative AI service is disabled or failing
	ErrAIUnavailable = errors.New("AI service unavailable")

	// ErrCircuitOpen is returned when the AI circuit breaker rejects a call
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMalformedAIResponse is returned when the AI reply cannot be parsed into a recommendation
	ErrMalformedAIResponse = errors.New("malformed AI response")

	// ErrExportFailed is returned when a result cannot be rendered to a document
	ErrExportFailed = errors.New("document export failed")

	// ErrInvalidCatalog is returned when a catalog file fails validation
	ErrInvalidCatalog = errors.New("invalid product catalog")
)
