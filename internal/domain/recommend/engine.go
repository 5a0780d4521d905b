package recommend

import (
	"sort"

	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/profile"
)

// DefaultTopN is the recommendation list size when the caller does not ask
// for a specific limit.
const DefaultTopN = 12

// Scoring weights. Purchases carry the strongest category signal, then
// browses, then passively declared favorites. Category affinity is normalized
// to [0,1] before weighting, so the featured bonus stays bounded and a strong
// affinity+rating combination can always outrank it.
const (
	purchaseWeight = 3.0
	browseWeight   = 2.0
	favoriteWeight = 1.0

	affinityFactor = 1.0
	ratingFactor   = 0.5
	featuredBonus  = 0.2
)

// Engine composes the catalog and the profile store into ranked output. It is
// pure computation over in-memory state; no call blocks on I/O.
type Engine struct {
	catalog  *product.Catalog
	profiles *profile.Store
}

func NewEngine(catalog *product.Catalog, profiles *profile.Store) *Engine {
	return &Engine{catalog: catalog, profiles: profiles}
}

// Recommendations returns up to topN catalog products ranked for the user.
// Items the user already purchased are excluded. A user without any history
// gets the cold-start ranking (zero affinity leaves rating and the featured
// bonus as the only signal), never an empty list. topN <= 0 yields an empty
// list; topN beyond the catalog size yields the full ranked catalog.
func (e *Engine) Recommendations(userID string, topN int) []product.Product {
	if topN <= 0 {
		return []product.Product{}
	}

	prof := e.profiles.Ensure(userID)
	affinity := e.categoryAffinity(prof)

	purchased := make(map[string]bool, len(prof.PurchaseHistory))
	for _, id := range prof.PurchaseHistory {
		purchased[id] = true
	}

	type scored struct {
		p     product.Product
		score float64
	}

	candidates := make([]scored, 0, e.catalog.Len())
	for _, p := range e.catalog.All() {
		if purchased[p.ID] {
			continue
		}
		score := affinity[p.Category]*affinityFactor + (p.Rating/product.MaxRating)*ratingFactor
		if p.Featured {
			score += featuredBonus
		}
		candidates = append(candidates, scored{p: p, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].p.Rating != candidates[j].p.Rating {
			return candidates[i].p.Rating > candidates[j].p.Rating
		}
		return candidates[i].p.ID < candidates[j].p.ID
	})

	if topN > len(candidates) {
		topN = len(candidates)
	}
	out := make([]product.Product, topN)
	for i := 0; i < topN; i++ {
		out[i] = candidates[i].p
	}
	return out
}

// categoryAffinity folds purchases, browses and favorite categories into a
// per-category weight, normalized so the weights sum to 1. History entries
// referencing products no longer in the catalog are skipped.
func (e *Engine) categoryAffinity(prof profile.UserProfile) map[string]float64 {
	weights := make(map[string]float64)
	total := 0.0

	add := func(category string, w float64) {
		weights[category] += w
		total += w
	}

	for _, id := range prof.PurchaseHistory {
		if p, ok := e.catalog.Get(id); ok {
			add(p.Category, purchaseWeight)
		}
	}
	for _, id := range prof.BrowsingHistory {
		if p, ok := e.catalog.Get(id); ok {
			add(p.Category, browseWeight)
		}
	}
	for _, category := range prof.FavoriteCategories {
		add(category, favoriteWeight)
	}

	if total > 0 {
		for category := range weights {
			weights[category] /= total
		}
	}
	return weights
}

// Search delegates to the catalog's text search. Results are relevance
// ordered, not personalized; recording the query into the caller's search
// history is the caller's responsibility so search stays testable on its own.
func (e *Engine) Search(query string, f product.Filter) ([]product.Product, error) {
	return e.catalog.TextSearch(query, f)
}
