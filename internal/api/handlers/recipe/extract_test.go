package recipe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipe-extractor/internal/core/extract"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVideos struct {
	candidates []common.VideoCandidate
}

func (s *stubVideos) Search(ctx context.Context, query string, maxResults int) ([]common.VideoCandidate, error) {
	return s.candidates, nil
}

func (s *stubVideos) PinnedComments(ctx context.Context, videoID string) ([]string, error) {
	return []string{"Ingredients:\n- 2 cups onion\n- 1 tbsp butter"}, nil
}

type stubTranscripts struct{}

func (s *stubTranscripts) Fetch(ctx context.Context, videoID string) (string, error) {
	return `Instructions:
1. Chop the onions, then set them aside
2. Heat oil in a pan for 2 minutes
3. Finally, add the onions and serve`, nil
}

func setupTestRouter(orch *extract.Orchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/recipe/extract", NewHandler(orch).HandleExtract)
	return r
}

func TestHandleExtractSuccess(t *testing.T) {
	videos := &stubVideos{candidates: []common.VideoCandidate{{
		VideoID:         "vid1",
		Title:           "Onion Soup Recipe",
		Description:     "ingredient list below",
		DurationMinutes: 12,
		ViewCount:       5000,
	}}}
	orch := extract.NewOrchestrator(videos, &stubTranscripts{}, nil, nil, 5, 30)
	router := setupTestRouter(orch)

	body := `{"query": "onion soup", "filters": {"cuisine": "French"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var recipe common.Recipe
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Onion Soup Recipe", recipe.Title)
	assert.Equal(t, common.SourceVideo, recipe.Source.Type)
	assert.NotEmpty(t, recipe.Ingredients)
	assert.NotEmpty(t, recipe.Instructions)
	assert.Equal(t, "French", recipe.Cuisine)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleExtractMissingQuery(t *testing.T) {
	orch := extract.NewOrchestrator(&stubVideos{}, &stubTranscripts{}, nil, nil, 5, 30)
	router := setupTestRouter(orch)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe/extract", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidRequest)
}

func TestHandleExtractVideoNotFound(t *testing.T) {
	// 零候選：主查詢與後備查詢都落空
	orch := extract.NewOrchestrator(&stubVideos{}, &stubTranscripts{}, nil, nil, 5, 30)
	router := setupTestRouter(orch)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe/extract", strings.NewReader(`{"query": "nonexistent dish"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeVideoNotFound)
}
