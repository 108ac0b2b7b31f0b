package common

import (
	"fmt"
	"strings"
)

// SearchFilters 影片搜尋過濾條件
type SearchFilters struct {
	Cuisine              string `json:"cuisine,omitempty"`               // 料理菜系（如：Thai、Italian）
	Diet                 string `json:"diet,omitempty"`                  // 飲食限制（如：vegetarian、keto）
	CookingTime          string `json:"cooking_time,omitempty"`          // 烹飪時間區間（Under 15 min / Under 30 min / Under 1 hour / 1+ hours）
	AvailableIngredients string `json:"available_ingredients,omitempty"` // 現有食材，逗號分隔
	ExcludeIngredients   string `json:"exclude_ingredients,omitempty"`   // 排除食材，逗號分隔
}

// Measurement 從食材顯示文字解析出的計量，一個食材可帶 0..n 筆
type Measurement struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeIngredient 最終輸出的食材項目
// DisplayText 保留原始文字，不做任何正規化
type RecipeIngredient struct {
	DisplayText  string        `json:"display_text"`
	Measurements []Measurement `json:"measurements,omitempty"`
}

// VideoCandidate 一支搜尋結果影片，評分後即丟棄
type VideoCandidate struct {
	VideoID         string   `json:"video_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ChannelTitle    string   `json:"channel_title"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	DurationMinutes float64  `json:"duration_minutes"`
	ViewCount       int64    `json:"view_count"`
	Comments        []string `json:"comments,omitempty"`
}

// 食譜來源類型
const (
	SourceVideo      = "video"
	SourceGenerative = "generative"
)

// RecipeSource 食譜來源標註
type RecipeSource struct {
	Type         string `json:"type"` // video 或 generative
	VideoID      string `json:"video_id,omitempty"`
	VideoTitle   string `json:"video_title,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
}

// Recipe 最終輸出的食譜快照
// Instructions 為空切片時代表部分成功，呼叫端必須能區分
type Recipe struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Source       RecipeSource       `json:"source"`
	TimeMinutes  int                `json:"time_minutes,omitempty"`
	Servings     int                `json:"servings,omitempty"`
	Cuisine      string             `json:"cuisine,omitempty"`
	Diet         string             `json:"diet,omitempty"`
}

// FormatIngredientLines 格式化食材清單（用於組 prompt）
func FormatIngredientLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("- %s\n", line))
	}
	return sb.String()
}

// SplitKeywords 將逗號分隔的過濾字串拆成關鍵字，去除空白與空項
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
