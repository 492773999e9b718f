package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
	"github.com/Liorohan10/Skin-Sage/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Text used when the engine produces the analysis
const (
	fallbackAIResponse    = "Generated by fallback recommendation engine"
	fallbackAdvice        = "Focus on maintaining a consistent skincare routine and staying hydrated."
	defaultAdvice         = "Maintain a consistent skincare routine for best results."
	defaultMorningRoutine = "1. Gentle Cleanser\n2. Hydrating Toner\n3. Serum\n4. Moisturizer\n5. Sunscreen"
	defaultNightRoutine   = "1. Double cleanse\n2. Exfoliating Toner\n3. Treatment Serum\n4. Night Cream"
)

const (
	resultIDPrefix   = "rec_"
	defaultAITimeout = 30 * time.Second
)

// errAIDisabled is reported when no AI client is configured
var errAIDisabled = fmt.Errorf("%w: no API key configured", domain.ErrAIUnavailable)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	AITimeout           time.Duration
	RecommendationLimit int
	EnableDebugLogging  bool
}

// AnalysisService turns a questionnaire into a stored analysis.
// Flow: normalize -> validate -> AI call and engine run in parallel -> pick -> store
type AnalysisService struct {
	engine     *RecommendationEngine
	ai         domain.AIRecommender
	store      domain.ResultStore
	exporter   domain.DocumentExporter
	normalizer *InputNormalizer
	validate   *validator.Validate
	aiTimeout  time.Duration
	limit      int

	now   func() time.Time
	newID func() string
}

// NewAnalysisService creates a new analysis service. ai may be nil, in which
// case every analysis comes from the engine.
func NewAnalysisService(
	engine *RecommendationEngine,
	ai domain.AIRecommender,
	store domain.ResultStore,
	exporter domain.DocumentExporter,
	config AnalysisServiceConfig,
) *AnalysisService {
	timeout := config.AITimeout
	if timeout <= 0 {
		timeout = defaultAITimeout
	}

	limit := config.RecommendationLimit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	return &AnalysisService{
		engine:     engine,
		ai:         ai,
		store:      store,
		exporter:   exporter,
		normalizer: NewInputNormalizer(config.EnableDebugLogging),
		validate:   validator.New(),
		aiTimeout:  timeout,
		limit:      limit,
		now:        time.Now,
		newID:      func() string { return resultIDPrefix + uuid.NewString() },
	}
}

// aiOutcome is what the AI branch of an analysis produced
type aiOutcome struct {
	raw string
	rec *domain.AIRecommendation
	err error
}

// Analyze runs one analysis and stores the result.
// AI failures never fail the call; the engine answer is used instead.
func (s *AnalysisService) Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	req := s.normalizer.NormalizeRequest(*request)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	profile := s.profileFromRequest(req)
	log := logging.Ctx(ctx)

	var (
		ai       aiOutcome
		fallback domain.RecommendationResult
		routine  domain.Routine
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ai = s.callAI(gctx, profile, req)
		return ctx.Err()
	})

	g.Go(func() error {
		start := time.Now()
		fallback = s.engine.RecommendProducts(profile, s.limit)
		routine = s.engine.GenerateRoutine(profile)
		metrics.ObserveEngineDuration(time.Since(start))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		ID:          s.newID(),
		UserProfile: summarizeProfile(req, profile),
		CreatedAt:   s.now().UTC(),
	}

	if ai.err == nil {
		applyAIRecommendation(result, ai.rec, ai.raw)
	} else {
		reason := fallbackReason(ai.err)
		metrics.RecordAIFallback(reason)
		log.Warn().Err(ai.err).Str("reason", reason).Msg("using engine recommendations")

		applyEngineRecommendation(result, profile, fallback, routine)
		if reason == metrics.ReasonMalformed {
			result.AIResponse = ai.raw
		}
	}

	if err := s.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store analysis result: %w", err)
	}

	metrics.RecordRecommendation(result.Source)
	log.Info().
		Str("id", result.ID).
		Str("source", result.Source).
		Int("products", len(result.RecommendedProducts)).
		Msg("analysis stored")

	return result, nil
}

// GetResult returns a stored analysis
func (s *AnalysisService) GetResult(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.store.Get(ctx, id)
}

// ExportResult renders a stored analysis with the configured exporter
func (s *AnalysisService) ExportResult(ctx context.Context, id string) ([]byte, string, error) {
	result, err := s.GetResult(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if s.exporter == nil {
		return nil, "", fmt.Errorf("%w: no exporter configured", domain.ErrExportFailed)
	}

	data, err := s.exporter.Export(result)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return data, s.exporter.ContentType(), nil
}

// Recommend runs the engine directly for a profile
func (s *AnalysisService) Recommend(profile domain.UserProfile, limit int) domain.RecommendationResult {
	return s.engine.RecommendProducts(s.prepareProfile(profile), limit)
}

// Routine builds morning and night routines directly for a profile
func (s *AnalysisService) Routine(profile domain.UserProfile) domain.Routine {
	return s.engine.GenerateRoutine(s.prepareProfile(profile))
}

// Concerns infers concerns for a skin type and age range given as form values
func (s *AnalysisService) Concerns(skinType, ageRange string) []string {
	return InferSkinConcerns(s.normalizer.NormalizeSkinType(skinType), s.normalizer.NormalizeAgeRange(ageRange))
}

// prepareProfile applies questionnaire cleanup, then NormalizeProfile
func (s *AnalysisService) prepareProfile(profile domain.UserProfile) domain.UserProfile {
	profile.SkinType = s.normalizer.NormalizeSkinType(profile.SkinType)
	profile.AgeRange = s.normalizer.NormalizeAgeRange(profile.AgeRange)
	profile.Budget = domain.BudgetPreference(s.normalizer.NormalizeBudget(string(profile.Budget)))
	profile.PreferredIngredients = s.normalizer.NormalizeIngredients(profile.PreferredIngredients)
	profile.AvoidIngredients = s.normalizer.NormalizeIngredients(profile.AvoidIngredients)
	profile.Concerns = s.normalizer.NormalizeConcerns(profile.Concerns)
	return NormalizeProfile(profile)
}

func (s *AnalysisService) profileFromRequest(req domain.AnalysisRequest) domain.UserProfile {
	concerns := req.SkinConcerns
	if len(concerns) == 0 {
		concerns = InferSkinConcerns(req.SkinType, req.AgeRange)
	}

	return domain.UserProfile{
		SkinType:             req.SkinType,
		PreferredIngredients: req.PreferredIngredients,
		AvoidIngredients:     req.AvoidIngredients,
		AgeRange:             req.AgeRange,
		Budget:               MapBudgetToRange(req.Budget),
		Concerns:             concerns,
		SkinConditions:       req.SkinConditions,
	}
}

func (s *AnalysisService) callAI(ctx context.Context, profile domain.UserProfile, req domain.AnalysisRequest) aiOutcome {
	if s.ai == nil {
		return aiOutcome{err: errAIDisabled}
	}

	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	prompt := BuildPrompt(profile, req.Budget, req.FaceImage != nil)
	raw, err := s.ai.GenerateRecommendations(ctx, prompt, req.FaceImage)
	if err != nil {
		return aiOutcome{err: err}
	}

	rec, err := ParseAIResponse(raw)
	if err != nil {
		return aiOutcome{raw: raw, err: err}
	}

	return aiOutcome{raw: raw, rec: rec}
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedAIResponse):
		return metrics.ReasonMalformed
	case errors.Is(err, domain.ErrCircuitOpen):
		return metrics.ReasonBreakerOpen
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.ReasonTimeout
	case errors.Is(err, errAIDisabled):
		return metrics.ReasonDisabled
	default:
		return metrics.ReasonError
	}
}

func applyAIRecommendation(result *domain.AnalysisResult, rec *domain.AIRecommendation, raw string) {
	result.Source = domain.SourceAI
	result.SkinConditionAnalysis = rec.SkinConditionAnalysis
	result.RecommendedProducts = rec.RecommendedProducts
	result.MorningRoutine = rec.MorningRoutine
	result.NightRoutine = rec.NightRoutine
	result.SkinCareAdvice = rec.SkinCareAdvice
	if result.SkinCareAdvice == "" {
		result.SkinCareAdvice = defaultAdvice
	}
	result.AIResponse = raw
}

func applyEngineRecommendation(
	result *domain.AnalysisResult,
	profile domain.UserProfile,
	recs domain.RecommendationResult,
	routine domain.Routine,
) {
	result.Source = domain.SourceEngine
	result.SkinConditionAnalysis = describeSkinCondition(profile)
	result.RecommendedProducts = ToRecommendedProducts(recs)
	result.MorningRoutine = FormatRoutine(routine.MorningRoutine, defaultMorningRoutine)
	result.NightRoutine = FormatRoutine(routine.NightRoutine, defaultNightRoutine)
	result.SkinCareAdvice = fallbackAdvice
	result.AIResponse = fallbackAIResponse
}

// ToRecommendedProducts converts engine output into the display shape
func ToRecommendedProducts(recs domain.RecommendationResult) []domain.RecommendedProduct {
	out := make([]domain.RecommendedProduct, 0, len(recs.Products))
	for _, p := range recs.Products {
		reasons := recs.MatchReasons[p.ID]
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, domain.RecommendedProduct{
			Name:         p.Name,
			Description:  p.Description,
			Price:        fmt.Sprintf("$%.2f", p.Price),
			Ingredients:  strings.Join(p.KeyIngredients, ", "),
			SuitableFor:  strings.Join(p.SuitableFor.SkinTypes, ", "),
			MatchReasons: reasons,
		})
	}
	return out
}

// FormatRoutine renders products as numbered lines, or def when empty
func FormatRoutine(products []domain.Product, def string) string {
	if len(products) == 0 {
		return def
	}

	lines := make([]string, 0, len(products))
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Name))
	}
	return strings.Join(lines, "\n")
}

// describeSkinCondition writes the engine's skin analysis paragraph
func describeSkinCondition(profile domain.UserProfile) string {
	sentences := []string{fmt.Sprintf(
		"Based on your %s skin type and age range (%s), our analysis shows that your main skin concerns are %s.",
		profile.SkinType, profile.AgeRange, strings.Join(profile.Concerns, ", "),
	)}

	switch profile.SkinType {
	case "Combination":
		sentences = append(sentences, "You may experience oiliness in the T-zone and dryness on the cheeks.")
	case "Sensitive":
		sentences = append(sentences, "Your skin may react to certain ingredients and environmental factors.")
	}

	switch profile.AgeRange {
	case "35-44", "45-54", "55-plus":
		sentences = append(sentences, "You may be experiencing signs of aging such as fine lines, wrinkles, or loss of firmness.")
	}

	return strings.Join(sentences, " ")
}

func summarizeProfile(req domain.AnalysisRequest, profile domain.UserProfile) domain.ProfileSummary {
	return domain.ProfileSummary{
		SkinType:             req.SkinType,
		PreferredIngredients: nonNil(req.PreferredIngredients),
		AvoidIngredients:     nonNil(req.AvoidIngredients),
		AgeRange:             req.AgeRange,
		Budget:               req.Budget,
		Concerns:             nonNil(profile.Concerns),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
