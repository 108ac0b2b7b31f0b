package extract

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// 顯示文字中的計量：支援整數、小數、分數與帶分數
var measurementPattern = regexp.MustCompile(`(?i)(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\s*(cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|grams?|g\b|kg|ml|liters?|litres?|l\b|cloves?|cans?|slices?|sticks?|pinch|dash)`)

// ExtractMeasurements 用正則從食材顯示文字取出計量，一行可有 0..n 筆
func ExtractMeasurements(text string) []common.Measurement {
	matches := measurementPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]common.Measurement, 0, len(matches))
	for _, m := range matches {
		qty, ok := quantityToFloat(m[1])
		if !ok {
			continue
		}
		out = append(out, common.Measurement{
			Quantity: qty,
			Unit:     strings.ToLower(strings.TrimSpace(m[2])),
		})
	}
	return out
}

// quantityToFloat 將 "2"、"2.5"、"1/2"、"1 1/2" 轉成浮點數
func quantityToFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	// 帶分數：1 1/2
	if parts := strings.Fields(s); len(parts) == 2 && strings.Contains(parts[1], "/") {
		whole, err1 := strconv.ParseFloat(parts[0], 64)
		frac, ok := fractionToFloat(parts[1])
		if err1 == nil && ok {
			return whole + frac, true
		}
		return 0, false
	}

	// 純分數：1/2
	if strings.Contains(s, "/") {
		return fractionToFloat(s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func fractionToFloat(s string) (float64, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, false
	}
	num, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	den, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}
