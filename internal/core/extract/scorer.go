package extract

import (
	"math"
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// 加分幅度刻意拉開一個數量級，讓前面的項目近似硬性條件
// 只能整體縮放，不可改變相對排序與差距
const (
	scoreTitleRecipe      = 10_000_000 // 標題含 recipe / how to
	scoreDescIngredients  = 5_000_000  // 描述含 ingredient / you will need
	scoreFlatBase         = 1_000_000  // 任何候選的底分，確保總能選出一支
	scoreCuisineMatch     = 500_000
	scoreDietMatch        = 500_000
	scoreTimeClose        = 300_000  // 與目標時間差 5 分鐘內
	scoreTimeNear         = 150_000  // 超出目標 10 分鐘內
	scoreTimeBracket      = 300_000  // 落在要求的時間區間（無 ground truth 時）
	scoreAvailableKeyword = 300_000  // 每個命中的現有食材關鍵字
	scoreExcludedKeyword  = -500_000 // 每個命中的排除食材關鍵字，可使總分為負

	viewCountWeight = 0.001 // 觀看數只當弱性平手判據

	// 低於半分鐘視為短影音，不是食譜，評分前直接剔除
	minDurationMinutes = 0.5
)

// ScoreCandidate 對單一候選影片評分，分數越高越好
// targetTimeMinutes <= 0 代表沒有 ground truth 時間
// 純加法、無隱藏隨機性：同輸入必得同分
func ScoreCandidate(c common.VideoCandidate, filters common.SearchFilters, targetTimeMinutes float64) float64 {
	title := strings.ToLower(c.Title)
	desc := strings.ToLower(c.Description)
	combined := title + " " + desc

	score := float64(c.ViewCount) * viewCountWeight

	if strings.Contains(title, "recipe") || strings.Contains(title, "how to") {
		score += scoreTitleRecipe
	}

	if strings.Contains(desc, "ingredient") || strings.Contains(desc, "you will need") {
		score += scoreDescIngredients
	}

	score += scoreFlatBase

	if filters.Cuisine != "" && strings.Contains(combined, strings.ToLower(filters.Cuisine)) {
		score += scoreCuisineMatch
	}

	if filters.Diet != "" && strings.Contains(combined, strings.ToLower(filters.Diet)) {
		score += scoreDietMatch
	}

	score += timeBonus(c.DurationMinutes, filters.CookingTime, targetTimeMinutes)

	for _, keyword := range common.SplitKeywords(filters.AvailableIngredients) {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			score += scoreAvailableKeyword
		}
	}

	for _, keyword := range common.SplitKeywords(filters.ExcludeIngredients) {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			score += scoreExcludedKeyword
		}
	}

	return score
}

// timeBonus 時間匹配加分：有 ground truth 用精準差距，否則用粗區間
func timeBonus(durationMinutes float64, cookingTime string, targetTimeMinutes float64) float64 {
	if targetTimeMinutes > 0 {
		diff := math.Abs(durationMinutes - targetTimeMinutes)
		if diff <= 5 {
			return scoreTimeClose
		}
		if durationMinutes > targetTimeMinutes && durationMinutes-targetTimeMinutes <= 10 {
			return scoreTimeNear
		}
		return 0
	}

	if cookingTime != "" && inTimeBracket(durationMinutes, cookingTime) {
		return scoreTimeBracket
	}
	return 0
}

// inTimeBracket 影片長度是否落在要求的烹飪時間區間
func inTimeBracket(durationMinutes float64, cookingTime string) bool {
	switch strings.ToLower(strings.TrimSpace(cookingTime)) {
	case "under 15 min", "under 15 minutes":
		return durationMinutes <= 15
	case "under 30 min", "under 30 minutes":
		return durationMinutes <= 30
	case "under 1 hour", "under 60 min":
		return durationMinutes <= 60
	case "1+ hours", "over 1 hour":
		return durationMinutes > 60
	}
	return false
}

// SelectBestCandidate 過濾短影音後取最高分者
// 沒有候選通過過濾、或沒有任何正分時回傳 false，
// 呼叫端應改用簡化查詢的最高觀看數後備
func SelectBestCandidate(candidates []common.VideoCandidate, filters common.SearchFilters, targetTimeMinutes float64) (common.VideoCandidate, bool) {
	var best common.VideoCandidate
	bestScore := math.Inf(-1)
	found := false

	for _, c := range candidates {
		if c.DurationMinutes < minDurationMinutes {
			continue
		}
		score := ScoreCandidate(c, filters, targetTimeMinutes)
		if score > bestScore {
			best = c
			bestScore = score
			found = true
		}
	}

	if !found || bestScore <= 0 {
		return common.VideoCandidate{}, false
	}
	return best, true
}
