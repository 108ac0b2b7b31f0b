package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// 低於此長度直接判為無效，不必問 AI
	minInstructionLength = 30
	// 送給 AI 判斷的節錄長度
	validationExcerptLength = 500
	// 啟發式後備要求的最小長度
	heuristicMinLength = 50
)

// 步驟指示詞：編號、step、順序連接詞
var stepIndicatorPattern = regexp.MustCompile(`(?i)\d+\s*\.|step|first|then|next|finally`)

// Validator 做法文字驗證器
// 優先走外部 AI 的二元判斷，AI 不可用時退回本地啟發式
type Validator struct {
	ai CompletionService // 可為 nil，此時只用啟發式
}

// NewValidator 創建驗證器
func NewValidator(ai CompletionService) *Validator {
	return &Validator{ai: ai}
}

// IsValidSteps 驗證步驟切片：以空格連接後走文字驗證
func (v *Validator) IsValidSteps(ctx context.Context, steps []string) bool {
	if len(steps) == 0 {
		return false
	}
	return v.IsValid(ctx, strings.Join(steps, " "))
}

// IsValid 驗證做法文字，保證回傳布林值、永不拋出
// 外部服務的任何錯誤都會被吃掉並轉走啟發式路徑
func (v *Validator) IsValid(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < minInstructionLength {
		return false
	}

	if v.ai != nil {
		if valid, err := v.askModel(ctx, text); err == nil {
			return valid
		} else {
			common.LogWarn("AI 驗證失敗，改用啟發式判斷", zap.Error(err))
		}
	}

	return heuristicValid(text)
}

// askModel 要求外部模型做 VALID / INVALID 二元判斷
func (v *Validator) askModel(ctx context.Context, text string) (bool, error) {
	excerpt := text
	if len(excerpt) > validationExcerptLength {
		excerpt = excerpt[:validationExcerptLength]
	}

	prompt := fmt.Sprintf(`You are checking whether a piece of text is a usable set of cooking instructions.

Text:
%s

Reply with exactly one word: VALID if the text is coherent cooking instructions, INVALID otherwise. Do not add anything else.`, excerpt)

	reply, err := v.ai.Complete(ctx, prompt)
	if err != nil {
		return false, err
	}

	upper := strings.ToUpper(reply)
	// INVALID 本身包含 VALID 子字串，必須先排除
	return strings.Contains(upper, "VALID") && !strings.Contains(upper, "INVALID"), nil
}

// heuristicValid 本地啟發式：夠長、有料理動詞、有步驟指示詞
func heuristicValid(text string) bool {
	if len(text) <= heuristicMinLength {
		return false
	}
	if !containsCookingVerb(text) {
		return false
	}
	return stepIndicatorPattern.MatchString(text)
}
