package extract

import (
	"regexp"
	"sort"
	"strings"
)

// 相似度門檻：超過即視為同一食材
const similarityThreshold = 0.8

// 正規化時剝除的尺寸/處理描述詞
var descriptorPattern = regexp.MustCompile(`\b(fresh|dried|ground|chopped|diced|minced|sliced|large|small|medium)\b`)

// 常見食材同義詞家族，家族內互相視為同一食材
var synonymFamilies = [][]string{
	{"onion", "onions", "yellow onion", "white onion", "red onion"},
	{"garlic", "garlic clove", "garlic cloves", "clove of garlic"},
	{"scallion", "scallions", "green onion", "green onions", "spring onion", "spring onions"},
	{"tomato", "tomatoes", "roma tomato", "cherry tomatoes"},
	{"bell pepper", "bell peppers", "red bell pepper", "green bell pepper", "capsicum"},
	{"chili", "chilli", "chile", "chili pepper", "red chili"},
	{"cilantro", "coriander", "coriander leaves"},
	{"chicken", "chicken breast", "chicken breasts", "chicken thigh", "chicken thighs"},
	{"beef", "ground beef", "beef mince", "minced beef"},
	{"olive oil", "extra virgin olive oil", "evoo"},
	{"salt", "sea salt", "kosher salt", "table salt"},
	{"pepper", "black pepper", "white pepper"},
	{"sugar", "white sugar", "granulated sugar", "caster sugar"},
	{"flour", "all-purpose flour", "all purpose flour", "plain flour"},
	{"butter", "unsalted butter", "salted butter"},
	{"stock", "broth", "chicken stock", "chicken broth", "vegetable stock", "vegetable broth"},
}

// 清理階段要丟棄的雜訊字
var noiseWords = map[string]bool{
	"recipe":       true,
	"ingredients":  true,
	"preparation":  true,
	"instructions": true,
	"method":       true,
}

// DeduplicateIngredients 合併相近的食材行，回傳存活項目的原始文字
//
// 匹配是「逐項對既有累積清單」做的，不是全對全分群，所以輸入順序會影響
// 最終的合併邊界。這是刻意保留的行為，不要改成 union-find 之類的分群。
func DeduplicateIngredients(lines []string) []string {
	var accumulated []ParsedIngredient

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parsed := ParseIngredient(line)
		normalized := normalizeIngredientName(parsed.IngredientName)
		if normalized == "" {
			continue
		}

		matched := false
		for i := range accumulated {
			existing := normalizeIngredientName(accumulated[i].IngredientName)
			if namesMatch(existing, normalized) {
				accumulated[i] = preferIngredient(accumulated[i], parsed)
				matched = true
				break
			}
		}

		if !matched {
			accumulated = append(accumulated, parsed)
		}
	}

	texts := make([]string, 0, len(accumulated))
	for _, ing := range accumulated {
		texts = append(texts, ing.OriginalText)
	}
	return cleanIngredientList(texts)
}

// normalizeIngredientName 產生比較用的鍵：小寫、折疊空白、剝除描述詞
// 只用於比較，永遠不會呈現給使用者
func normalizeIngredientName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = descriptorPattern.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(name), " ")
}

// namesMatch 依序套用四種匹配策略
func namesMatch(a, b string) bool {
	// (a) 正規化名稱完全相等
	if a == b {
		return true
	}

	// (b) 編輯距離相似度
	if Similarity(a, b) > similarityThreshold {
		return true
	}

	// (c) 子字串包含，較短者長度需 >= 3
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) >= 3 && strings.Contains(longer, shorter) {
		return true
	}

	// (d) 同義詞家族共同成員
	return inSameSynonymFamily(a, b)
}

func inSameSynonymFamily(a, b string) bool {
	for _, family := range synonymFamilies {
		foundA, foundB := false, false
		for _, member := range family {
			if member == a {
				foundA = true
			}
			if member == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// preferIngredient 合併偏好：數量+單位齊全 > 有處理方式 > 名稱較長
// 偏好規則承襲既有行為，沒有更好的 ground truth，不要自行調整
func preferIngredient(existing, candidate ParsedIngredient) ParsedIngredient {
	existingComplete := existing.Quantity != "" && existing.Unit != ""
	candidateComplete := candidate.Quantity != "" && candidate.Unit != ""

	if existingComplete != candidateComplete {
		if candidateComplete {
			return candidate
		}
		return existing
	}

	if (existing.Preparation != "") != (candidate.Preparation != "") {
		if candidate.Preparation != "" {
			return candidate
		}
		return existing
	}

	if len(candidate.IngredientName) > len(existing.IngredientName) {
		return candidate
	}
	return existing
}

// cleanIngredientList 丟棄過短與雜訊項目，並按字母排序讓輸出可重現
func cleanIngredientList(texts []string) []string {
	cleaned := make([]string, 0, len(texts))
	for _, t := range texts {
		trimmed := strings.TrimSpace(t)
		if len(trimmed) < 3 {
			continue
		}
		if noiseWords[strings.ToLower(trimmed)] {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}

	sort.Strings(cleaned)
	return cleaned
}
