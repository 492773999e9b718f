package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "skinsage-backend"
	version     = "1.0.0"

	// maxImageBytes caps the uploaded face photo
	maxImageBytes = 10 << 20
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis  *usecase.AnalysisService
	catalog   domain.ProductCatalog
	aiEnabled bool
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis *usecase.AnalysisService, catalog domain.ProductCatalog, aiEnabled bool) *Handler {
	return &Handler{
		analysis:  analysis,
		catalog:   catalog,
		aiEnabled: aiEnabled,
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RecommendRequest is the body of POST /api/v1/recommendations
type RecommendRequest struct {
	domain.UserProfile
	Limit int `json:"limit"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    serviceName,
		"version":    version,
		"ai_enabled": h.aiEnabled,
	})
}

// Analyze runs a full analysis from a JSON body or a multipart form with an optional faceImage
func (h *Handler) Analyze(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	req, err := bindAnalysisRequest(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult returns a stored analysis by id
func (h *Handler) GetResult(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	result, err := h.analysis.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportResult streams a stored analysis as a PDF attachment
func (h *Handler) ExportResult(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	id := c.Param("id")
	data, contentType, err := h.analysis.ExportResult(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="skinsage-recommendations-%s.pdf"`, id))
	c.Data(http.StatusOK, contentType, data)
}

// Recommend runs the engine directly and returns ranked products with reasons
func (h *Handler) Recommend(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	if strings.TrimSpace(req.SkinType) == "" {
		h.respondError(c, fmt.Errorf("%w: skinType is required", domain.ErrInvalidRequest))
		return
	}

	c.JSON(http.StatusOK, h.analysis.Recommend(req.UserProfile, req.Limit))
}

// Routine builds morning and night routines for a profile
func (h *Handler) Routine(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	if strings.TrimSpace(profile.SkinType) == "" {
		h.respondError(c, fmt.Errorf("%w: skinType is required", domain.ErrInvalidRequest))
		return
	}

	c.JSON(http.StatusOK, h.analysis.Routine(profile))
}

// InferConcerns returns the concerns inferred from skinType and ageRange query parameters
func (h *Handler) InferConcerns(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analysis service not configured"})
		return
	}

	skinType := c.Query("skinType")
	ageRange := c.Query("ageRange")
	if skinType == "" || ageRange == "" {
		h.respondError(c, fmt.Errorf("%w: skinType and ageRange are required", domain.ErrInvalidRequest))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skinType": skinType,
		"ageRange": ageRange,
		"concerns": h.analysis.Concerns(skinType, ageRange),
	})
}

// ListProducts returns the catalog, optionally filtered by category
func (h *Handler) ListProducts(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "product catalog not configured"})
		return
	}

	products := h.catalog.GetAll()
	if category := c.Query("category"); category != "" {
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if strings.EqualFold(string(p.Category), category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
	case errors.Is(err, domain.ErrResultNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "results not found"})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
	case errors.Is(err, domain.ErrExportFailed):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate PDF", Details: err.Error()})
	case errors.Is(err, domain.ErrAIUnavailable), errors.Is(err, domain.ErrCircuitOpen):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "AI service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process request"})
	}
}

// bindAnalysisRequest reads the questionnaire from JSON or multipart form data
func bindAnalysisRequest(c *gin.Context) (*domain.AnalysisRequest, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req domain.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return &req, nil
	}

	req := &domain.AnalysisRequest{
		SkinType: c.PostForm("skinType"),
		AgeRange: c.PostForm("ageRange"),
		Budget:   c.PostForm("budget"),
	}

	lists := []struct {
		field string
		dst   *[]string
	}{
		{"preferredIngredients", &req.PreferredIngredients},
		{"avoidIngredients", &req.AvoidIngredients},
		{"skinConcerns", &req.SkinConcerns},
		{"skinConditions", &req.SkinConditions},
	}
	for _, l := range lists {
		values, err := formList(c, l.field)
		if err != nil {
			return nil, err
		}
		*l.dst = values
	}

	image, err := formImage(c)
	if err != nil {
		return nil, err
	}
	req.FaceImage = image

	return req, nil
}

// formList accepts a JSON array string or repeated form values
func formList(c *gin.Context, field string) ([]string, error) {
	values := c.PostFormArray(field)
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(values[0]), &parsed); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON format for %s", domain.ErrInvalidRequest, field)
		}
		return parsed, nil
	}
	return values, nil
}

// formImage reads the optional faceImage file
func formImage(c *gin.Context) (*domain.ImageData, error) {
	header, err := c.FormFile("faceImage")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	if header.Size > maxImageBytes {
		return nil, fmt.Errorf("%w: faceImage exceeds %d bytes", domain.ErrInvalidRequest, maxImageBytes)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: faceImage must be an image, got %s", domain.ErrInvalidRequest, mimeType)
	}

	return &domain.ImageData{MIMEType: mimeType, Data: data}, nil
}
