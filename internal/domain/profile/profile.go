package profile

// UserProfile is one user's accumulated interaction state. Histories are
// append-only and ordered oldest-first; FavoriteCategories is a set.
type UserProfile struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	BrowsingHistory    []string `json:"browsing_history"`
	PurchaseHistory    []string `json:"purchase_history"`
	FavoriteCategories []string `json:"favorite_categories"`
	SearchHistory      []string `json:"search_history"`
}

func newProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:             userID,
		BrowsingHistory:    []string{},
		PurchaseHistory:    []string{},
		FavoriteCategories: []string{},
		SearchHistory:      []string{},
	}
}

func (p *UserProfile) clone() UserProfile {
	out := *p
	out.BrowsingHistory = append([]string{}, p.BrowsingHistory...)
	out.PurchaseHistory = append([]string{}, p.PurchaseHistory...)
	out.FavoriteCategories = append([]string{}, p.FavoriteCategories...)
	out.SearchHistory = append([]string{}, p.SearchHistory...)
	return out
}
