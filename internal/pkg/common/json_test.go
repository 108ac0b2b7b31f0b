package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayStripsFences(t *testing.T) {
	raw := "```json\n[\"2 cups flour\", \"1 tsp salt\"]\n```"

	var out []string
	require.NoError(t, ParseJSON(ExtractJSONArray(raw), &out))
	assert.Equal(t, []string{"2 cups flour", "1 tsp salt"}, out)
}

func TestExtractJSONArrayWithSurroundingText(t *testing.T) {
	raw := `Here is the list you asked for: ["a", "b"] hope it helps!`
	assert.Equal(t, `["a", "b"]`, ExtractJSONArray(raw))
}

func TestExtractJSONArrayNoBrackets(t *testing.T) {
	// 找不到括號時原樣返回，讓後續解析報錯
	assert.Equal(t, "no json here", ExtractJSONArray("no json here"))
}

func TestExtractJSONObject(t *testing.T) {
	raw := "```json\n{\"title\": \"soup\"}\n```"
	assert.Equal(t, `{"title": "soup"}`, ExtractJSONObject(raw))
}

func TestQuoteJSONKeys(t *testing.T) {
	raw := `{title: "soup", steps: ["a"]}`
	assert.Equal(t, `{"title": "soup", "steps": ["a"]}`, QuoteJSONKeys(raw))
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var out []string
	assert.Error(t, ParseJSON(`["a"] ["b"]`, &out))
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"peanut", "shrimp"}, SplitKeywords("peanut, shrimp"))
	assert.Equal(t, []string{"peanut"}, SplitKeywords("  peanut , "))
	assert.Nil(t, SplitKeywords(""))
	assert.Nil(t, SplitKeywords("   "))
}

func TestFormatIngredientLines(t *testing.T) {
	got := FormatIngredientLines([]string{"2 cups flour", "1 tsp salt"})
	assert.Equal(t, "- 2 cups flour\n- 1 tsp salt\n", got)
}
