package video

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

// 每支影片抓取的留言數上限
const maxCommentThreads = 20

// 置頂留言的關鍵字啟發式：留言文字含這些字樣才視為創作者置頂
// 沿用既有行為，不改用 API 的置頂旗標
var pinnedKeywords = []string{"pinned", "creator", "highlighted"}

// YouTubeClient YouTube Data API v3 客戶端
// 實作 extract.VideoProvider
type YouTubeClient struct {
	config *config.Config
	client *resty.Client
}

// NewYouTubeClient 創建 YouTube 客戶端
func NewYouTubeClient(cfg *config.Config) *YouTubeClient {
	client := resty.New().
		SetBaseURL(youtubeBaseURL).
		SetTimeout(cfg.YouTube.Timeout)

	return &YouTubeClient{
		config: cfg,
		client: client,
	}
}

// searchResponse search.list 回應
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// videosResponse videos.list 回應（詳細資料）
type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// commentThreadsResponse commentThreads.list 回應
type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay string `json:"textDisplay"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search 搜尋候選影片並補齊長度與觀看數
// 詳細資料用單次批量 videos.list 取回，不需逐支請求
func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int) ([]common.VideoCandidate, error) {
	var searchResp searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          query,
			"type":       "video",
			"maxResults": strconv.Itoa(maxResults),
			"key":        c.config.YouTube.APIKey,
		}).
		SetResult(&searchResp).
		Get("/search")

	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(searchResp.Items) == 0 {
		return nil, nil
	}

	candidates := make([]common.VideoCandidate, 0, len(searchResp.Items))
	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		ids = append(ids, item.ID.VideoID)
		candidates = append(candidates, common.VideoCandidate{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
		})
	}

	if err := c.fillDetails(ctx, ids, candidates); err != nil {
		// 詳細資料失敗不致命：評分會缺觀看數與長度，但候選仍可用
		common.LogWarn("影片詳細資料抓取失敗", zap.Error(err))
	}

	return candidates, nil
}

// fillDetails 批量補齊影片長度與觀看數
func (c *YouTubeClient) fillDetails(ctx context.Context, ids []string, candidates []common.VideoCandidate) error {
	if len(ids) == 0 {
		return nil
	}

	var videosResp videosResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "contentDetails,statistics",
			"id":   strings.Join(ids, ","),
			"key":  c.config.YouTube.APIKey,
		}).
		SetResult(&videosResp).
		Get("/videos")

	if err != nil {
		return fmt.Errorf("youtube videos lookup failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("youtube videos lookup returned status %d", resp.StatusCode())
	}

	details := make(map[string]struct {
		duration  float64
		viewCount int64
	}, len(videosResp.Items))

	for _, item := range videosResp.Items {
		views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		details[item.ID] = struct {
			duration  float64
			viewCount int64
		}{
			duration:  parseISODuration(item.ContentDetails.Duration),
			viewCount: views,
		}
	}

	for i := range candidates {
		if d, ok := details[candidates[i].VideoID]; ok {
			candidates[i].DurationMinutes = d.duration
			candidates[i].ViewCount = d.viewCount
		}
	}

	return nil
}

// PinnedComments 取疑似創作者置頂的留言
// 判定只看留言文字是否含關鍵字，不看 API 欄位
func (c *YouTubeClient) PinnedComments(ctx context.Context, videoID string) ([]string, error) {
	var commentsResp commentThreadsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"videoId":    videoID,
			"order":      "relevance",
			"maxResults": strconv.Itoa(maxCommentThreads),
			"textFormat": "plainText",
			"key":        c.config.YouTube.APIKey,
		}).
		SetResult(&commentsResp).
		Get("/commentThreads")

	if err != nil {
		return nil, fmt.Errorf("youtube comments lookup failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube comments lookup returned status %d", resp.StatusCode())
	}

	var pinned []string
	for _, item := range commentsResp.Items {
		text := item.Snippet.TopLevelComment.Snippet.TextDisplay
		lower := strings.ToLower(text)
		for _, keyword := range pinnedKeywords {
			if strings.Contains(lower, keyword) {
				pinned = append(pinned, text)
				break
			}
		}
	}

	return pinned, nil
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration 將 ISO-8601 時長（PT1H2M3S）轉為分鐘
// 解析失敗回傳 0，交由評分端的短影音過濾處理
func parseISODuration(s string) float64 {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	return float64(hours)*60 + float64(minutes) + float64(seconds)/60
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
