package extract

import (
	"regexp"
	"strings"
)

// ParsedIngredient 單行食材解析結果
// OriginalText 永遠保留原始文字供顯示，正規化與合併都不會動到它
type ParsedIngredient struct {
	Quantity       string
	Unit           string
	IngredientName string
	Preparation    string // 逗號後的處理方式，可為空
	OriginalText   string
}

// 已知計量單位，用於區分「2 cups flour」與「2 large eggs」
var knownUnits = map[string]bool{
	"cup": true, "cups": true,
	"tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	"oz": true, "ounce": true, "ounces": true,
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"g": true, "gram": true, "grams": true, "kg": true,
	"ml": true, "l": true, "liter": true, "liters": true, "litre": true, "litres": true,
	"pinch": true, "dash": true,
	"clove": true, "cloves": true,
	"can": true, "cans": true,
	"slice": true, "slices": true,
	"stick": true, "sticks": true,
	"bunch": true, "bunches": true,
	"package": true, "packages": true, "pkg": true,
	"quart": true, "quarts": true, "pint": true, "pints": true,
}

var (
	// 1/2 或 1 1/2 開頭
	fractionPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+)\s+(\S+)\s+(.+)$`)
	// 2 或 2.5 開頭
	decimalPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\S+)\s+(.+)$`)
	// salt to taste / salt, to taste
	toTastePattern = regexp.MustCompile(`(?i)^(.+?),?\s+to\s+taste$`)
	// 純數量開頭（2 large eggs）
	bareCountPattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)
)

// ParseIngredient 將一行食材文字拆成 數量/單位/名稱/處理方式
// 依序嘗試模式，第一個命中者勝出；全部落空時整行當作名稱返回
// 保證不失敗：任何輸入（含空字串）都會得到結果
func ParseIngredient(line string) ParsedIngredient {
	original := line
	trimmed := strings.TrimSpace(line)

	// 分數 + 單位 + 名稱（+ 處理方式）
	if m := fractionPattern.FindStringSubmatch(trimmed); m != nil {
		if knownUnits[strings.ToLower(m[2])] {
			name, prep := splitPreparation(m[3])
			return ParsedIngredient{
				Quantity:       normalizeSpaces(m[1]),
				Unit:           strings.ToLower(m[2]),
				IngredientName: name,
				Preparation:    prep,
				OriginalText:   original,
			}
		}
	}

	// 小數/整數 + 單位 + 名稱（+ 處理方式）
	if m := decimalPattern.FindStringSubmatch(trimmed); m != nil {
		if knownUnits[strings.ToLower(m[2])] {
			name, prep := splitPreparation(m[3])
			return ParsedIngredient{
				Quantity:       m[1],
				Unit:           strings.ToLower(m[2]),
				IngredientName: name,
				Preparation:    prep,
				OriginalText:   original,
			}
		}
	}

	// 適量（to taste）
	if m := toTastePattern.FindStringSubmatch(trimmed); m != nil {
		return ParsedIngredient{
			Quantity:       "",
			Unit:           "",
			IngredientName: strings.TrimSpace(m[1]),
			Preparation:    "to taste",
			OriginalText:   original,
		}
	}

	// 純數量 + 描述詞 + 名稱（2 large eggs）
	if m := bareCountPattern.FindStringSubmatch(trimmed); m != nil {
		name, prep := splitPreparation(m[2])
		return ParsedIngredient{
			Quantity:       m[1],
			Unit:           "",
			IngredientName: name,
			Preparation:    prep,
			OriginalText:   original,
		}
	}

	// 後備：整行當作名稱，不得失敗
	name, prep := splitPreparation(trimmed)
	return ParsedIngredient{
		IngredientName: name,
		Preparation:    prep,
		OriginalText:   original,
	}
}

// splitPreparation 取出逗號後的處理方式（sifted、diced 等），沒有逗號則處理方式為空
func splitPreparation(s string) (name, prep string) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ","); idx != -1 {
		return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
	}
	return s, ""
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
