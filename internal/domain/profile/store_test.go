package profile

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsure_CreatesEmptyProfileOnce(t *testing.T) {
	s := NewStore()

	first := s.Ensure("user1")
	second := s.Ensure("user1")

	assert.Equal(t, first, second)
	assert.Empty(t, first.BrowsingHistory)
	assert.Empty(t, first.PurchaseHistory)
	assert.Empty(t, first.FavoriteCategories)
	assert.Empty(t, first.SearchHistory)
	assert.Equal(t, 1, s.Count())
}

func TestEnsure_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.RecordView("user1", "P1")

	p := s.Ensure("user1")
	p.BrowsingHistory[0] = "mutated"
	p.BrowsingHistory = append(p.BrowsingHistory, "P2")

	assert.Equal(t, []string{"P1"}, s.Ensure("user1").BrowsingHistory)
}

func TestRegister_KeepsHistories(t *testing.T) {
	s := NewStore()
	s.RecordPurchase("user1", "P1")

	p := s.Register("user1", "Alex Johnson", "alex@example.com")

	assert.Equal(t, "Alex Johnson", p.Name)
	assert.Equal(t, "alex@example.com", p.Email)
	assert.Equal(t, []string{"P1"}, p.PurchaseHistory)
}

func TestRecordSearch_RepeatedQueriesKeepOrder(t *testing.T) {
	s := NewStore()

	s.RecordSearch("user1", "shoes")
	s.RecordSearch("user1", "shoes")

	assert.Equal(t, []string{"shoes", "shoes"}, s.SearchHistory("user1"))
}

func TestSearchHistory_UnknownUserIsEmptyAndNotCreated(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.SearchHistory("ghost"))
	assert.Zero(t, s.Count())
}

func TestClearSearchHistory_ScopedToSearchOnly(t *testing.T) {
	s := NewStore()
	s.RecordSearch("user1", "shoes")
	s.RecordView("user1", "P1")
	s.RecordPurchase("user1", "P2")
	s.AddFavoriteCategory("user1", "books")

	assert.True(t, s.ClearSearchHistory("user1"))

	p := s.Ensure("user1")
	assert.Empty(t, p.SearchHistory)
	assert.Equal(t, []string{"P1"}, p.BrowsingHistory)
	assert.Equal(t, []string{"P2"}, p.PurchaseHistory)
	assert.Equal(t, []string{"books"}, p.FavoriteCategories)
}

func TestClearSearchHistory_UnknownUser(t *testing.T) {
	s := NewStore()

	assert.False(t, s.ClearSearchHistory("ghost"))
}

func TestAddFavoriteCategory_NoDuplicates(t *testing.T) {
	s := NewStore()

	s.AddFavoriteCategory("user1", "books")
	s.AddFavoriteCategory("user1", "books")
	s.AddFavoriteCategory("user1", "toys")

	assert.Equal(t, []string{"books", "toys"}, s.Ensure("user1").FavoriteCategories)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()
	const perUser = 50

	var wg sync.WaitGroup
	for u := 0; u < 4; u++ {
		userID := fmt.Sprintf("user%d", u)
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(userID string, i int) {
				defer wg.Done()
				s.RecordSearch(userID, fmt.Sprintf("q%d", i))
				s.RecordView(userID, fmt.Sprintf("P%d", i))
			}(userID, i)
		}
	}
	wg.Wait()

	for u := 0; u < 4; u++ {
		userID := fmt.Sprintf("user%d", u)
		assert.Len(t, s.SearchHistory(userID), perUser)
		assert.Len(t, s.Ensure(userID).BrowsingHistory, perUser)
	}
}
