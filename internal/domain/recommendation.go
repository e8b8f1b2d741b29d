package domain

// RecommendationSource tells where a recommendation list came from.
type RecommendationSource string

const (
	SourcePersonalized RecommendationSource = "personalized"
	SourcePopular      RecommendationSource = "popular"
	SourceSeed         RecommendationSource = "seed"
)

type RecommendationResult struct {
	Items          []Item
	Source         RecommendationSource
	FallbackReason string
}

type RecommendationMeta struct {
	Source         RecommendationSource `json:"source"`
	FallbackReason string               `json:"fallback_reason,omitempty"`
	GeneratedAt    string               `json:"generated_at"`
	TotalCount     int                  `json:"total_count"`
}
