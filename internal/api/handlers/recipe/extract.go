package recipe

import (
	"errors"
	"net/http"

	"recipe-extractor/internal/core/extract"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractRequest 食譜抽取請求
type ExtractRequest struct {
	Query   string               `json:"query" binding:"required"` // 自由文字查詢（如：pad thai）
	Filters common.SearchFilters `json:"filters"`                  // 選填過濾條件
}

// Handler 食譜抽取處理程序
type Handler struct {
	orchestrator *extract.Orchestrator
}

// NewHandler 創建新的處理程序
func NewHandler(orchestrator *extract.Orchestrator) *Handler {
	return &Handler{
		orchestrator: orchestrator,
	}
}

// HandleExtract 執行食譜抽取
//
// 呼叫端須分支的三種結果：
//   - 200 + 完整食譜
//   - 200 + instructions 為空陣列（部分成功）
//   - 404 VIDEO_NOT_FOUND（完全失敗）
func (h *Handler) HandleExtract(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜抽取請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	recipe, err := h.orchestrator.Extract(c.Request.Context(), req.Query, req.Filters)
	if err != nil {
		var customErr *common.CustomError
		if errors.As(err, &customErr) {
			common.LogWarn("食譜抽取失敗",
				zap.String("request_id", requestID),
				zap.String("code", customErr.Code),
				zap.String("query", req.Query),
			)
			c.JSON(customErr.Status, gin.H{"error": customErr.Message, "code": customErr.Code})
			return
		}

		common.LogError("食譜抽取發生未預期錯誤",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": common.ErrCodeInternalError})
		return
	}

	common.LogInfo("食譜抽取完成",
		zap.String("request_id", requestID),
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("instructions", len(recipe.Instructions)),
		zap.String("source_type", recipe.Source.Type),
	)

	c.JSON(http.StatusOK, recipe)
}
