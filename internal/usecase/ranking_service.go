package usecase

import (
	"sort"

	"go.uber.org/zap"

	"github.com/maison/backend/internal/domain"
)

// DefaultRecommendationLimit is the size of the "Recommended for You" rail
const DefaultRecommendationLimit = 8

// RankingConfig holds configuration for the ranking service
type RankingConfig struct {
	Limit              int
	EnableDebugLogging bool
}

// RankingService orders catalog products for a shopper.
// It performs no I/O and is safe for concurrent use.
type RankingService struct {
	limit              int
	enableDebugLogging bool
	logger             *zap.Logger
}

// NewRankingService creates a new ranking service with the given configuration
func NewRankingService(config RankingConfig, logger *zap.Logger) *RankingService {
	limit := config.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RankingService{
		limit:              limit,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger.Named("ranking"),
	}
}

// Limit returns the maximum number of products returned by Rank and Fallback
func (s *RankingService) Limit() int {
	return s.limit
}

// Rank scores active products against prefs and returns the best matches,
// highest score first with ties going to the newest product.
// Without usable preferences it returns the fallback ordering unscored.
func (s *RankingService) Rank(products []domain.Product, prefs *domain.UserPreferences) []domain.ScoredProduct {
	if !prefs.Personalizable() {
		fallback := s.Fallback(products)
		result := make([]domain.ScoredProduct, len(fallback))
		for i := range fallback {
			result[i] = domain.ScoredProduct{Product: fallback[i]}
		}
		return result
	}

	scored := make([]domain.ScoredProduct, 0, len(products))
	for i := range products {
		if !products[i].IsActive {
			continue
		}
		match := Score(&products[i], prefs)
		if s.enableDebugLogging {
			s.logger.Debug("scored product",
				zap.String("product", products[i].Name),
				zap.Int("score", match.Score),
				zap.String("reason", match.Reason))
		}
		scored = append(scored, domain.ScoredProduct{
			Product:     products[i],
			MatchScore:  match.Score,
			MatchReason: match.Reason,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].CreatedAt.After(scored[j].CreatedAt)
	})

	if len(scored) > s.limit {
		scored = scored[:s.limit]
	}
	return scored
}

// Fallback returns the cold-start selection: featured, active products,
// newest first.
func (s *RankingService) Fallback(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsFeatured && p.IsActive {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > s.limit {
		result = result[:s.limit]
	}
	return result
}
