package extract

import (
	"context"

	"recipe-extractor/internal/pkg/common"
)

// CompletionService 文字補全服務（驗證判斷與生成式後備共用）
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// VideoProvider 影片搜尋與中繼資料提供者
type VideoProvider interface {
	// Search 搜尋候選影片，含長度/觀看數等詳細資料
	Search(ctx context.Context, query string, maxResults int) ([]common.VideoCandidate, error)

	// PinnedComments 取創作者置頂留言（關鍵字啟發式判定）
	PinnedComments(ctx context.Context, videoID string) ([]string, error)
}

// TranscriptProvider 口語字幕提供者
type TranscriptProvider interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// RecipeDatabase 食譜資料庫，提供時間/份量 ground truth
type RecipeDatabase interface {
	LookupGroundTruth(ctx context.Context, query string) (timeMinutes int, servings int, err error)
}

// RecipeDraft 管線的工作累積器，各階段逐步填入
// 通過驗證後組裝成最終的 common.Recipe
type RecipeDraft struct {
	Title                  string
	Description            string
	Ingredients            []string // 去重後的顯示文字
	Instructions           []string
	SourceVideo            *common.VideoCandidate
	GroundTruthTimeMinutes int
	Servings               int
	Cuisine                string
	Diet                   string
	Generative             bool // 做法是否來自生成式後備
}
