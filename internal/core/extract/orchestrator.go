package extract

import (
	"context"
	"fmt"
	"strings"

	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// 送給 AI 的來源文字節錄長度
	sourceTextExcerptLength = 4000
	// 組裝時的描述節錄長度
	descriptionExcerptLength = 200
)

// Orchestrator 抽取管線的唯一入口
// 線性狀態機，各階段有獨立的後備分支：
// 查 ground truth → 搜影片 → 抓字幕 → 抓置頂留言 → 抽食材 → 抽做法 → 驗證 →（無效則重生）→ 組裝
//
// 所有外部協作者都由建構端注入，管線本身無跨請求狀態，可併發使用
type Orchestrator struct {
	videos      VideoProvider
	transcripts TranscriptProvider
	recipeDB    RecipeDatabase // 可為 nil
	ai          CompletionService
	validator   *Validator

	maxCandidates      int
	defaultTimeMinutes int
}

// NewOrchestrator 創建抽取管線
func NewOrchestrator(videos VideoProvider, transcripts TranscriptProvider, recipeDB RecipeDatabase, ai CompletionService, maxCandidates, defaultTimeMinutes int) *Orchestrator {
	if maxCandidates <= 0 {
		maxCandidates = 5
	}
	if defaultTimeMinutes <= 0 {
		defaultTimeMinutes = 30
	}
	return &Orchestrator{
		videos:             videos,
		transcripts:        transcripts,
		recipeDB:           recipeDB,
		ai:                 ai,
		validator:          NewValidator(ai),
		maxCandidates:      maxCandidates,
		defaultTimeMinutes: defaultTimeMinutes,
	}
}

// Extract 執行完整抽取管線
//
// 三種結果，呼叫端必須分支處理：
//   - 完整食譜
//   - Instructions 為空切片的食譜（部分成功，不會偷塞佔位步驟）
//   - ErrVideoNotFound（後備查詢後仍無任何候選影片，唯一的硬性失敗）
//
// 其餘外部服務失敗都各自走文件化的後備，不會傳到呼叫端
func (o *Orchestrator) Extract(ctx context.Context, query string, filters common.SearchFilters) (*common.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.ErrEmptyQuery
	}

	draft := &RecipeDraft{
		Cuisine: filters.Cuisine,
		Diet:    filters.Diet,
	}

	// GROUND_TRUTH_LOOKUP：失敗不致命，用預設時間繼續
	common.LogPipelineStage("ground_truth_lookup", zap.String("query", query))
	draft.GroundTruthTimeMinutes = o.defaultTimeMinutes
	if o.recipeDB != nil {
		if minutes, servings, err := o.recipeDB.LookupGroundTruth(ctx, query); err == nil && minutes > 0 {
			draft.GroundTruthTimeMinutes = minutes
			draft.Servings = servings
		} else if err != nil {
			common.LogWarn("ground truth 查詢失敗，使用預設時間",
				zap.Error(err),
				zap.Int("default_minutes", o.defaultTimeMinutes),
			)
		}
	}

	// VIDEO_SEARCH：唯一的終止性失敗點
	video, err := o.searchVideo(ctx, query, filters, float64(draft.GroundTruthTimeMinutes))
	if err != nil {
		return nil, err
	}
	draft.SourceVideo = video
	draft.Title = video.Title

	// TRANSCRIPT_FETCH：失敗就退回影片描述，描述永遠存在
	sourceText := o.fetchSourceText(ctx, video)

	// COMMENT_FETCH：只抓置頂留言，失敗視為沒有留言
	pinned, err := o.videos.PinnedComments(ctx, video.VideoID)
	if err != nil {
		common.LogWarn("置頂留言抓取失敗", zap.Error(err), zap.String("video_id", video.VideoID))
		pinned = nil
	}

	// INGREDIENT_EXTRACTION：AI 優先，零結果才翻置頂留言，最後一律去重
	lines, err := o.extractIngredientsAI(ctx, video.Title, sourceText)
	if err != nil || len(lines) == 0 {
		if err != nil {
			common.LogWarn("AI 食材抽取失敗，改查置頂留言", zap.Error(err))
		}
		lines = ingredientLinesFromComments(pinned)
	}
	draft.Ingredients = DeduplicateIngredients(lines)

	// INSTRUCTION_EXTRACTION
	draft.Instructions = ExtractInstructions(sourceText)

	// VALIDATION → REGENERATE
	if len(draft.Instructions) == 0 || !o.validator.IsValidSteps(ctx, draft.Instructions) {
		common.LogInfo("做法未通過驗證，啟動生成式後備",
			zap.Int("extracted_steps", len(draft.Instructions)),
			zap.String("video_id", video.VideoID),
		)

		regenerated, genErr := o.generateInstructions(ctx, video.Title, draft.Ingredients, sourceText)
		if genErr != nil || len(regenerated) == 0 {
			if genErr != nil {
				common.LogWarn("生成式後備失敗，回傳空做法", zap.Error(genErr))
			}
			// 不偷塞佔位步驟：空做法必須讓呼叫端看得見
			draft.Instructions = []string{}
		} else {
			draft.Instructions = regenerated
			draft.Generative = true
		}
	}

	// ASSEMBLE
	return assembleRecipe(draft), nil
}

// searchVideo 組查詢、搜尋、評分選出最佳候選
// 主查詢選不出來時改用簡化查詢取最高觀看數；兩者皆零結果才算失敗
func (o *Orchestrator) searchVideo(ctx context.Context, query string, filters common.SearchFilters, targetTimeMinutes float64) (*common.VideoCandidate, error) {
	searchQuery := buildSearchQuery(query, filters)
	common.LogPipelineStage("video_search", zap.String("search_query", searchQuery))

	candidates, err := o.videos.Search(ctx, searchQuery, o.maxCandidates)
	if err != nil {
		common.LogWarn("影片搜尋失敗，嘗試簡化查詢", zap.Error(err))
		candidates = nil
	}

	if best, ok := SelectBestCandidate(candidates, filters, targetTimeMinutes); ok {
		common.LogInfo("選出最佳候選影片",
			zap.String("video_id", best.VideoID),
			zap.String("title", best.Title),
			zap.Float64("duration_minutes", best.DurationMinutes),
		)
		return &best, nil
	}

	// 後備：簡化查詢，直接取觀看數最高者
	fallbackQuery := simplifiedQuery(query)
	common.LogPipelineStage("video_search_fallback", zap.String("search_query", fallbackQuery))

	fallbackCandidates, err := o.videos.Search(ctx, fallbackQuery, o.maxCandidates)
	if err != nil {
		common.LogError("後備影片搜尋失敗", zap.Error(err))
		return nil, common.ErrVideoNotFound
	}
	if len(fallbackCandidates) == 0 {
		return nil, common.ErrVideoNotFound
	}

	best := fallbackCandidates[0]
	for _, c := range fallbackCandidates[1:] {
		if c.ViewCount > best.ViewCount {
			best = c
		}
	}
	return &best, nil
}

// fetchSourceText 字幕優先，失敗退回影片描述
func (o *Orchestrator) fetchSourceText(ctx context.Context, video *common.VideoCandidate) string {
	common.LogPipelineStage("transcript_fetch", zap.String("video_id", video.VideoID))

	if o.transcripts != nil {
		if transcript, err := o.transcripts.Fetch(ctx, video.VideoID); err == nil && strings.TrimSpace(transcript) != "" {
			return transcript
		} else if err != nil {
			common.LogWarn("字幕抓取失敗，改用影片描述",
				zap.Error(err),
				zap.String("video_id", video.VideoID),
			)
		}
	}
	return video.Description
}

// extractIngredientsAI 要求補全服務從來源文字抽出食材清單（JSON 陣列）
func (o *Orchestrator) extractIngredientsAI(ctx context.Context, title, sourceText string) ([]string, error) {
	if o.ai == nil {
		return nil, fmt.Errorf("completion service unavailable")
	}

	excerpt := sourceText
	if len(excerpt) > sourceTextExcerptLength {
		excerpt = excerpt[:sourceTextExcerptLength]
	}

	prompt := fmt.Sprintf(`Extract the ingredient list for the recipe "%s" from the following video text.

Text:
%s

Requirements:
1. Return ONLY a JSON array of strings, one ingredient per entry
2. Keep quantities and units exactly as stated (e.g. "2 cups flour")
3. Do not invent ingredients that are not mentioned
4. Do not include equipment, steps, or commentary
5. Return the most compact JSON possible, no markdown fences
6. If no ingredients can be found, return []`, title, excerpt)

	reply, err := o.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("AI ingredient extraction failed: %w", err)
	}

	var lines []string
	if err := common.ParseJSON(common.ExtractJSONArray(reply), &lines); err != nil {
		return nil, fmt.Errorf("failed to parse AI ingredient response: %w", err)
	}
	return lines, nil
}

// generateInstructions 生成式後備：從標題、食材與可用文字合成做法
func (o *Orchestrator) generateInstructions(ctx context.Context, title string, ingredients []string, sourceText string) ([]string, error) {
	if o.ai == nil {
		return nil, fmt.Errorf("completion service unavailable")
	}

	excerpt := sourceText
	if len(excerpt) > sourceTextExcerptLength {
		excerpt = excerpt[:sourceTextExcerptLength]
	}

	prompt := fmt.Sprintf(`Write cooking instructions for the recipe "%s".

Known ingredients:
%s

Context from the source video (may be noisy or incomplete):
%s

Requirements:
1. Return ONLY a JSON array of strings, one step per entry, in cooking order
2. Base the steps on the ingredients and context above, do not invent exotic additions
3. Each step must be a complete imperative sentence
4. At most %d steps
5. Return the most compact JSON possible, no markdown fences`, title, common.FormatIngredientLines(ingredients), excerpt, maxSteps)

	reply, err := o.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("instruction generation failed: %w", err)
	}

	var steps []string
	if err := common.ParseJSON(common.ExtractJSONArray(reply), &steps); err != nil {
		return nil, fmt.Errorf("failed to parse generated instructions: %w", err)
	}

	if len(steps) > maxSteps {
		steps = steps[:maxSteps]
	}
	return steps, nil
}

// buildSearchQuery 組影片搜尋查詢：補 recipe、菜系、飲食與快速提示
func buildSearchQuery(query string, filters common.SearchFilters) string {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)

	if !strings.Contains(lower, "recipe") {
		q += " recipe"
	}
	if filters.Cuisine != "" && !strings.Contains(lower, strings.ToLower(filters.Cuisine)) {
		q += " " + filters.Cuisine
	}
	if filters.Diet != "" && !strings.Contains(lower, strings.ToLower(filters.Diet)) {
		q += " " + filters.Diet
	}

	switch strings.ToLower(strings.TrimSpace(filters.CookingTime)) {
	case "under 15 min", "under 15 minutes", "under 30 min", "under 30 minutes":
		q += " quick"
	}

	return q
}

// simplifiedQuery 後備查詢：取前兩個詞加 recipe
func simplifiedQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	simplified := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(simplified), "recipe") {
		simplified += " recipe"
	}
	return simplified
}

// ingredientLinesFromComments 從置頂留言找食材清單
// 只認含 ingredient 字樣的留言，逐行保留像食材的行
func ingredientLinesFromComments(comments []string) []string {
	for _, comment := range comments {
		if !strings.Contains(strings.ToLower(comment), "ingredient") {
			continue
		}

		var lines []string
		for _, line := range strings.Split(comment, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
			if len(line) < 3 {
				continue
			}
			if strings.Contains(strings.ToLower(line), "ingredient") {
				continue // 標題行
			}
			if isExcludedLine(line) {
				continue
			}
			lines = append(lines, line)
		}

		if len(lines) > 0 {
			return lines
		}
	}
	return nil
}

// assembleRecipe 將草稿組裝成最終的不可變食譜快照
func assembleRecipe(draft *RecipeDraft) *common.Recipe {
	ingredients := make([]common.RecipeIngredient, 0, len(draft.Ingredients))
	for _, text := range draft.Ingredients {
		ingredients = append(ingredients, common.RecipeIngredient{
			DisplayText:  text,
			Measurements: ExtractMeasurements(text),
		})
	}

	instructions := draft.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	source := common.RecipeSource{Type: common.SourceVideo}
	if draft.Generative {
		source.Type = common.SourceGenerative
	}

	recipe := &common.Recipe{
		Title:        draft.Title,
		Ingredients:  ingredients,
		Instructions: instructions,
		Source:       source,
		TimeMinutes:  draft.GroundTruthTimeMinutes,
		Servings:     draft.Servings,
		Cuisine:      draft.Cuisine,
		Diet:         draft.Diet,
	}

	if draft.SourceVideo != nil {
		recipe.Source.VideoID = draft.SourceVideo.VideoID
		recipe.Source.VideoTitle = draft.SourceVideo.Title
		recipe.Source.ChannelTitle = draft.SourceVideo.ChannelTitle
		recipe.ImageURL = draft.SourceVideo.ThumbnailURL
		recipe.Description = excerptDescription(draft.SourceVideo.Description)
	}

	return recipe
}

// excerptDescription 描述節錄：單行化並截斷
func excerptDescription(desc string) string {
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) > descriptionExcerptLength {
		desc = desc[:descriptionExcerptLength]
	}
	return desc
}
