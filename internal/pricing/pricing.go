// internal/pricing/pricing.go

// Package pricing holds the pure reductions over a product's price entries:
// lowest and highest available price and the derived savings percentage.
package pricing

import (
	"math"

	"github.com/panierprix/panier-backend/internal/models"
)

// Summary is the derived aggregate attached to API responses. Best and worst
// are nil when no entry is available.
type Summary struct {
	BestPrice      *float64 `json:"best_price"`
	WorstPrice     *float64 `json:"worst_price"`
	SavingsPercent int      `json:"savings_percent"`
}

// BestPrice returns the minimum price over available entries. The second
// return is false when no entry is available.
func BestPrice(entries []models.Price) (float64, bool) {
	best := 0.0
	found := false
	for _, e := range entries {
		if !e.Availability {
			continue
		}
		if !found || e.Price < best {
			best = e.Price
			found = true
		}
	}
	return best, found
}

// WorstPrice returns the maximum price over available entries.
func WorstPrice(entries []models.Price) (float64, bool) {
	worst := 0.0
	found := false
	for _, e := range entries {
		if !e.Availability {
			continue
		}
		if !found || e.Price > worst {
			worst = e.Price
			found = true
		}
	}
	return worst, found
}

// SavingsPercent returns the relative gap between the highest and lowest
// available price as an integer percentage, rounded half up. It is 0 when
// fewer than one available entry exists or when best equals worst.
func SavingsPercent(entries []models.Price) int {
	best, ok := BestPrice(entries)
	if !ok {
		return 0
	}
	worst, ok := WorstPrice(entries)
	if !ok {
		return 0
	}
	return int(math.Round((worst - best) / worst * 100))
}

// Summarize computes all three reductions at once.
func Summarize(entries []models.Price) Summary {
	s := Summary{}
	if best, ok := BestPrice(entries); ok {
		s.BestPrice = &best
	}
	if worst, ok := WorstPrice(entries); ok {
		s.WorstPrice = &worst
	}
	s.SavingsPercent = SavingsPercent(entries)
	return s
}
