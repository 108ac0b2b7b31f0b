package extract

import (
	"testing"

	"recipe-extractor/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestScoreCandidateDeterministic(t *testing.T) {
	c := common.VideoCandidate{
		Title:           "Pad Thai Recipe",
		Description:     "Full ingredient list below",
		DurationMinutes: 12,
		ViewCount:       120000,
	}
	filters := common.SearchFilters{Cuisine: "Thai"}

	first := ScoreCandidate(c, filters, 0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScoreCandidate(c, filters, 0))
	}
}

func TestScoreCandidateTitleRecipeDominates(t *testing.T) {
	withRecipe := common.VideoCandidate{Title: "Easy carbonara recipe", DurationMinutes: 10}
	without := common.VideoCandidate{Title: "My trip to Rome", DurationMinutes: 10, ViewCount: 5_000_000}

	// 標題加分是最高一級，500 萬觀看的平手分也追不上
	assert.Greater(t,
		ScoreCandidate(withRecipe, common.SearchFilters{}, 0),
		ScoreCandidate(without, common.SearchFilters{}, 0),
	)
}

func TestScoreCandidateHowToCountsAsRecipeSignal(t *testing.T) {
	howTo := common.VideoCandidate{Title: "How to make ramen", DurationMinutes: 20}
	plain := common.VideoCandidate{Title: "ramen tasting", DurationMinutes: 20}

	assert.Greater(t,
		ScoreCandidate(howTo, common.SearchFilters{}, 0),
		ScoreCandidate(plain, common.SearchFilters{}, 0),
	)
}

func TestScoreCandidateCuisineGap(t *testing.T) {
	a := common.VideoCandidate{Title: "Thai green curry recipe", DurationMinutes: 15, ViewCount: 1000}
	b := common.VideoCandidate{Title: "green curry recipe", DurationMinutes: 15, ViewCount: 1000}
	filters := common.SearchFilters{Cuisine: "Thai"}

	diff := ScoreCandidate(a, filters, 0) - ScoreCandidate(b, filters, 0)
	assert.Equal(t, float64(scoreCuisineMatch), diff)
}

func TestScoreCandidateExcludedKeywordsCanGoNegative(t *testing.T) {
	c := common.VideoCandidate{
		Title:           "peanut shrimp pork special",
		Description:     "",
		DurationMinutes: 10,
	}
	filters := common.SearchFilters{ExcludeIngredients: "peanut, shrimp, pork"}

	// 底分 100 萬，三個排除命中共 -150 萬
	assert.Less(t, ScoreCandidate(c, filters, 0), 0.0)
}

func TestScoreCandidateViewCountIsWeakTiebreak(t *testing.T) {
	a := common.VideoCandidate{Title: "soup recipe", DurationMinutes: 10, ViewCount: 1000}
	b := common.VideoCandidate{Title: "soup recipe", DurationMinutes: 10, ViewCount: 2000}

	diff := ScoreCandidate(b, common.SearchFilters{}, 0) - ScoreCandidate(a, common.SearchFilters{}, 0)
	assert.InDelta(t, 1.0, diff, 1e-9) // 1000 次觀看差 × 0.001
}

func TestTimeBonusGroundTruth(t *testing.T) {
	// 差距 5 分鐘內拿滿分
	assert.Equal(t, float64(scoreTimeClose), timeBonus(28, "", 30))
	// 超出 10 分鐘內拿次一級
	assert.Equal(t, float64(scoreTimeNear), timeBonus(38, "", 30))
	// 超出太多沒分
	assert.Equal(t, 0.0, timeBonus(55, "", 30))
	// 比目標短超過 5 分鐘也沒分（只有超出才有次級加分）
	assert.Equal(t, 0.0, timeBonus(20, "", 30))
}

func TestTimeBonusBracketWithoutGroundTruth(t *testing.T) {
	assert.Equal(t, float64(scoreTimeBracket), timeBonus(12, "Under 15 min", 0))
	assert.Equal(t, 0.0, timeBonus(25, "Under 15 min", 0))
	assert.Equal(t, float64(scoreTimeBracket), timeBonus(90, "1+ hours", 0))
	assert.Equal(t, 0.0, timeBonus(12, "", 0))
}

func TestSelectBestCandidateFiltersShorts(t *testing.T) {
	short := common.VideoCandidate{
		VideoID:         "short",
		Title:           "60 second pasta recipe",
		DurationMinutes: 0.4,
		ViewCount:       50_000_000,
	}
	normal := common.VideoCandidate{
		VideoID:         "normal",
		Title:           "pasta recipe",
		DurationMinutes: 8,
		ViewCount:       1000,
	}

	best, ok := SelectBestCandidate([]common.VideoCandidate{short, normal}, common.SearchFilters{}, 0)
	assert.True(t, ok)
	assert.Equal(t, "normal", best.VideoID)
}

func TestSelectBestCandidateEmpty(t *testing.T) {
	_, ok := SelectBestCandidate(nil, common.SearchFilters{}, 0)
	assert.False(t, ok)
}

func TestSelectBestCandidateAllShorts(t *testing.T) {
	candidates := []common.VideoCandidate{
		{Title: "recipe short", DurationMinutes: 0.3},
		{Title: "recipe short 2", DurationMinutes: 0.2},
	}
	_, ok := SelectBestCandidate(candidates, common.SearchFilters{}, 0)
	assert.False(t, ok)
}

func TestSelectBestCandidateRejectsNonPositiveBest(t *testing.T) {
	// 唯一候選的總分為負：呼叫端應改走後備查詢
	c := common.VideoCandidate{
		Title:           "peanut shrimp pork festival",
		DurationMinutes: 10,
	}
	filters := common.SearchFilters{ExcludeIngredients: "peanut, shrimp, pork"}

	_, ok := SelectBestCandidate([]common.VideoCandidate{c}, filters, 0)
	assert.False(t, ok)
}

func TestSelectBestCandidatePicksHighestScore(t *testing.T) {
	candidates := []common.VideoCandidate{
		{VideoID: "a", Title: "cooking vlog", DurationMinutes: 10},
		{VideoID: "b", Title: "tonkotsu ramen recipe", Description: "ingredient list in comments", DurationMinutes: 10},
		{VideoID: "c", Title: "ramen review", DurationMinutes: 10},
	}

	best, ok := SelectBestCandidate(candidates, common.SearchFilters{}, 0)
	assert.True(t, ok)
	assert.Equal(t, "b", best.VideoID)
}
