package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weights tunes how much each factor contributes to a recommendation score.
type Weights struct {
	Capacity        float64 `json:"capacity" yaml:"capacity"`
	Distance        float64 `json:"distance" yaml:"distance"`
	RouteEfficiency float64 `json:"routeEfficiency" yaml:"routeEfficiency"`
	Personalization float64 `json:"personalization" yaml:"personalization"`
}

// DefaultWeights returns the out-of-the-box factor weights.
func DefaultWeights() Weights {
	return Weights{
		Capacity:        0.4,
		Distance:        0.3,
		RouteEfficiency: 0.2,
		Personalization: 0.1,
	}
}

// Negative reports whether any weight is below zero.
func (w Weights) Negative() bool {
	return w.Capacity < 0 || w.Distance < 0 || w.RouteEfficiency < 0 || w.Personalization < 0
}

// ShownCandidate is one entry a customer saw in a recommendation list.
type ShownCandidate struct {
	ID          uuid.UUID `json:"id"`
	Score       float64   `json:"score"`
	Recommended bool      `json:"recommended"`
}

// RecommendationLog records what was shown and what was picked. It is
// append-only and never read back by scoring.
type RecommendationLog struct {
	ID              uuid.UUID
	ShopID          string
	SessionID       string
	CustomerID      string
	CandidatesShown []ShownCandidate
	SelectedID      uuid.UUID
	WasRecommended  bool
	Timestamp       time.Time
}
