package recipedb

import (
	"context"
	"fmt"
	"net/http"

	"recipe-extractor/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// Client 食譜資料庫客戶端，查 ready-in 時間與份量當 ground truth
// 實作 extract.RecipeDatabase；失敗由管線以預設時間吸收
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建食譜資料庫客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.RecipeDB.BaseURL).
		SetTimeout(cfg.RecipeDB.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

// searchResponse complexSearch 回應
type searchResponse struct {
	Results []struct {
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
	} `json:"results"`
}

// LookupGroundTruth 查詢時間/份量 ground truth
func (c *Client) LookupGroundTruth(ctx context.Context, query string) (int, int, error) {
	var result searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":                query,
			"number":               "1",
			"addRecipeInformation": "true",
			"apiKey":               c.config.RecipeDB.APIKey,
		}).
		SetResult(&result).
		Get("/recipes/complexSearch")

	if err != nil {
		return 0, 0, fmt.Errorf("recipe database lookup failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, 0, fmt.Errorf("recipe database returned status %d", resp.StatusCode())
	}

	if len(result.Results) == 0 {
		return 0, 0, fmt.Errorf("no recipe database match for %q", query)
	}

	first := result.Results[0]
	return first.ReadyInMinutes, first.Servings, nil
}
