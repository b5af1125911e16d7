// Package scoring ranks eligible slots and pickup locations with a
// deterministic, explainable weighted score.
package scoring

import "slotwise/internal/domain/entity"

// Factor is one sub-score of a recommendation.
type Factor int

// Factors in tie-break order for choosing the dominant reason.
const (
	FactorCapacity Factor = iota
	FactorDistance
	FactorRouteEfficiency
	FactorPersonalization
)

var factorNames = [...]string{"capacity", "distance", "routeEfficiency", "personalization"}

var factorReasons = [...]string{
	"Plenty of availability",
	"Closest to you",
	"Efficient delivery route",
	"Matches your preferences",
}

func (f Factor) String() string {
	return factorNames[f]
}

// Reason is the customer-facing explanation when f dominates a score.
func (f Factor) Reason() string {
	return factorReasons[f]
}

func (f Factor) weight(w entity.Weights) float64 {
	switch f {
	case FactorCapacity:
		return w.Capacity
	case FactorDistance:
		return w.Distance
	case FactorRouteEfficiency:
		return w.RouteEfficiency
	default:
		return w.Personalization
	}
}

// FactorScore is an applicable sub-score with the weight it was combined with.
type FactorScore struct {
	Factor Factor  `json:"-"`
	Name   string  `json:"factor"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// Breakdown lists the applicable sub-scores of a candidate. Factors that do
// not apply are absent rather than zero.
type Breakdown []FactorScore

func (b Breakdown) add(f Factor, score float64, w entity.Weights) Breakdown {
	return append(b, FactorScore{Factor: f, Name: f.String(), Score: score, Weight: f.weight(w)})
}

// Combine returns Σ(score·weight)/Σweight over the applicable factors, or
// the plain mean when every applicable weight is zero. No factors gives 0.
func (b Breakdown) Combine() float64 {
	if len(b) == 0 {
		return 0
	}

	var sum, weights, plain float64
	for _, fs := range b {
		sum += fs.Score * fs.Weight
		weights += fs.Weight
		plain += fs.Score
	}
	if weights == 0 {
		return clamp(plain / float64(len(b)))
	}

	return clamp(sum / weights)
}

// Dominant returns the factor with the highest weighted contribution. Ties
// go to the factor listed first in the Factor constants.
func (b Breakdown) Dominant() (Factor, bool) {
	if len(b) == 0 {
		return 0, false
	}

	zeroWeights := true
	for _, fs := range b {
		if fs.Weight != 0 {
			zeroWeights = false

			break
		}
	}

	var (
		best    Factor
		bestVal = -1.0
	)
	for _, fs := range b {
		v := fs.Score * fs.Weight
		if zeroWeights {
			v = fs.Score
		}
		if v > bestVal || v == bestVal && fs.Factor < best {
			best, bestVal = fs.Factor, v
		}
	}

	return best, true
}
