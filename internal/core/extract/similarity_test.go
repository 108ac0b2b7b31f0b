package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("chicken", "chicken"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarityCompletelyDifferent(t *testing.T) {
	// 等長且無共同字元：距離 = maxLen，相似度 0
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestSimilarityEmptyVersusNonEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "abc"))
	assert.Equal(t, 0.0, Similarity("abc", ""))
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"onion", "onions"},
		{"tomato", "potato"},
		{"garlic clove", "clove of garlic"},
		{"", "salt"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"Similarity(%q, %q) 必須對稱", p[0], p[1])
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"chicken breast", "chicken thigh"},
		{"a", "completely different string"},
		{"sugar", "suggar"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilaritySingleEdit(t *testing.T) {
	// "onion" vs "onions"：一次插入，maxLen 6 → (6-1)/6
	assert.InDelta(t, 5.0/6.0, Similarity("onion", "onions"), 1e-9)
}

func TestSimilarityUnicode(t *testing.T) {
	// 以 rune 計算，多位元組字元只算一個編輯
	assert.InDelta(t, 0.5, Similarity("蔥花", "蔥段"), 1e-9)
}
