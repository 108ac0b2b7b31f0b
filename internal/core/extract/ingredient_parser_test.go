package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredientDecimalWithUnit(t *testing.T) {
	p := ParseIngredient("2 cups flour")
	assert.Equal(t, "2", p.Quantity)
	assert.Equal(t, "cups", p.Unit)
	assert.Equal(t, "flour", p.IngredientName)
	assert.Empty(t, p.Preparation)
	assert.Equal(t, "2 cups flour", p.OriginalText)
}

func TestParseIngredientFraction(t *testing.T) {
	p := ParseIngredient("1/2 tsp salt")
	assert.Equal(t, "1/2", p.Quantity)
	assert.Equal(t, "tsp", p.Unit)
	assert.Equal(t, "salt", p.IngredientName)
}

func TestParseIngredientMixedFraction(t *testing.T) {
	p := ParseIngredient("1 1/2 cups sugar")
	assert.Equal(t, "1 1/2", p.Quantity)
	assert.Equal(t, "cups", p.Unit)
	assert.Equal(t, "sugar", p.IngredientName)
}

func TestParseIngredientWithPreparation(t *testing.T) {
	p := ParseIngredient("2 cups onion, diced")
	assert.Equal(t, "2", p.Quantity)
	assert.Equal(t, "cups", p.Unit)
	assert.Equal(t, "onion", p.IngredientName)
	assert.Equal(t, "diced", p.Preparation)
}

func TestParseIngredientToTaste(t *testing.T) {
	for _, line := range []string{"salt to taste", "salt, to taste"} {
		p := ParseIngredient(line)
		assert.Empty(t, p.Quantity, line)
		assert.Empty(t, p.Unit, line)
		assert.Equal(t, "salt", p.IngredientName, line)
		assert.Equal(t, "to taste", p.Preparation, line)
	}
}

func TestParseIngredientBareCount(t *testing.T) {
	// "large" 不是已知單位，退到純數量模式
	p := ParseIngredient("2 large eggs")
	assert.Equal(t, "2", p.Quantity)
	assert.Empty(t, p.Unit)
	assert.Equal(t, "large eggs", p.IngredientName)
}

func TestParseIngredientNoQuantity(t *testing.T) {
	p := ParseIngredient("fresh basil leaves")
	assert.Empty(t, p.Quantity)
	assert.Empty(t, p.Unit)
	assert.Equal(t, "fresh basil leaves", p.IngredientName)
}

// 任何輸入都要拿得到結果，且 OriginalText 一字不改
func TestParseIngredientNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"???",
		"1",
		"2 cups",
		"½ cup milk", // unicode 分數不在模式內，整行當名稱
		"a pinch of love",
	}
	for _, in := range inputs {
		p := ParseIngredient(in)
		assert.Equal(t, in, p.OriginalText, "OriginalText 必須保留原輸入: %q", in)
	}
}

func TestExtractMeasurementsBasic(t *testing.T) {
	ms := ExtractMeasurements("2 cups flour")
	assert.Len(t, ms, 1)
	assert.Equal(t, 2.0, ms[0].Quantity)
	assert.Equal(t, "cups", ms[0].Unit)
}

func TestExtractMeasurementsFractions(t *testing.T) {
	ms := ExtractMeasurements("1 1/2 tsp vanilla and 1/4 cup butter")
	assert.Len(t, ms, 2)
	assert.InDelta(t, 1.5, ms[0].Quantity, 1e-9)
	assert.Equal(t, "tsp", ms[0].Unit)
	assert.InDelta(t, 0.25, ms[1].Quantity, 1e-9)
	assert.Equal(t, "cup", ms[1].Unit)
}

func TestExtractMeasurementsGramVsKilogram(t *testing.T) {
	ms := ExtractMeasurements("500 g beef, 1 kg potatoes")
	assert.Len(t, ms, 2)
	assert.Equal(t, "g", ms[0].Unit)
	assert.Equal(t, "kg", ms[1].Unit)
}

func TestExtractMeasurementsNone(t *testing.T) {
	assert.Nil(t, ExtractMeasurements("fresh basil leaves"))
	assert.Nil(t, ExtractMeasurements(""))
}
