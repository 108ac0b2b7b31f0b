package extract

// Similarity 計算兩個字串的相似度，回傳 [0,1]，1.0 代表完全相同
// 公式：(maxLen - editDistance) / maxLen，使用經典 Levenshtein 編輯距離
// 純函數，對任意字串（含空字串）皆有定義
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein(ra, rb)
	return float64(maxLen-dist) / float64(maxLen)
}

// levenshtein 經典編輯距離，插入/刪除/替換成本皆為 1
// 滾動兩列 DP，空間 O(min 邊長)
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // 刪除
				curr[j-1]+1,    // 插入
				prev[j-1]+cost, // 替換
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func minInt(nums ...int) int {
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
