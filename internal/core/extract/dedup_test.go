package extract

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateMergesVariants(t *testing.T) {
	lines := []string{
		"onion",
		"yellow onion",
		"2 cups onion, diced",
		"salt",
	}

	got := DeduplicateIngredients(lines)

	// 三種洋蔥寫法收斂為一項，保留帶數量與處理方式的完整版本
	assert.Len(t, got, 2)
	assert.Contains(t, got, "2 cups onion, diced")
	assert.Contains(t, got, "salt")
}

func TestDeduplicateContainmentMerge(t *testing.T) {
	// "oil" 恰好 3 字元，達到子字串包含的最小長度
	got := DeduplicateIngredients([]string{"olive oil", "oil"})
	assert.Len(t, got, 1)
}

func TestDeduplicateSynonymFamilies(t *testing.T) {
	got := DeduplicateIngredients([]string{"scallions", "green onions"})
	assert.Len(t, got, 1)

	got = DeduplicateIngredients([]string{"cilantro", "coriander"})
	assert.Len(t, got, 1)
}

func TestDeduplicateKeepsDistinctIngredients(t *testing.T) {
	lines := []string{
		"2 cups flour",
		"1 cup sugar",
		"3 eggs",
		"1 tsp vanilla extract",
	}
	got := DeduplicateIngredients(lines)
	assert.Len(t, got, 4)
}

func TestDeduplicatePreferenceQuantityWins(t *testing.T) {
	// 順序無論先後，帶數量+單位的版本都應勝出
	a := DeduplicateIngredients([]string{"flour", "2 cups flour"})
	b := DeduplicateIngredients([]string{"2 cups flour", "flour"})
	assert.Equal(t, []string{"2 cups flour"}, a)
	assert.Equal(t, []string{"2 cups flour"}, b)
}

func TestDeduplicatePreferencePreparation(t *testing.T) {
	got := DeduplicateIngredients([]string{"carrot", "carrot, julienned"})
	assert.Equal(t, []string{"carrot, julienned"}, got)
}

func TestDeduplicateDropsNoiseAndShortEntries(t *testing.T) {
	lines := []string{
		"Ingredients",
		"recipe",
		"ab",
		"2 cups rice",
	}
	got := DeduplicateIngredients(lines)
	assert.Equal(t, []string{"2 cups rice"}, got)
}

func TestDeduplicateOutputSorted(t *testing.T) {
	got := DeduplicateIngredients([]string{"zucchini", "basil", "mushrooms"})
	assert.True(t, sort.StringsAreSorted(got), "輸出必須按字母排序: %v", got)
}

func TestDeduplicateEmptyInput(t *testing.T) {
	assert.Empty(t, DeduplicateIngredients(nil))
	assert.Empty(t, DeduplicateIngredients([]string{"", "  ", "\t"}))
}

// 輸出永遠不多於輸入項數
func TestDeduplicateNeverGrows(t *testing.T) {
	inputs := [][]string{
		{"onion", "onions", "red onion", "garlic", "garlic cloves"},
		{"chicken breast", "chicken thighs", "beef", "ground beef"},
		{"salt", "pepper", "sugar"},
	}
	for _, lines := range inputs {
		got := DeduplicateIngredients(lines)
		assert.LessOrEqual(t, len(got), len(lines))
	}
}

// 再跑一次不應改變結果
func TestDeduplicateIdempotent(t *testing.T) {
	lines := []string{"2 cups onion, diced", "yellow onion", "1 tsp salt", "black pepper"}
	once := DeduplicateIngredients(lines)
	twice := DeduplicateIngredients(once)
	assert.Equal(t, once, twice)
}
