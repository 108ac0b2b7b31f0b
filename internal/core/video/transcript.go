package video

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"recipe-extractor/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// TranscriptClient 口語字幕服務客戶端
// 實作 extract.TranscriptProvider；任何失敗都回傳錯誤，
// 由管線退回影片描述
type TranscriptClient struct {
	config *config.Config
	client *resty.Client
}

// NewTranscriptClient 創建字幕客戶端
func NewTranscriptClient(cfg *config.Config) *TranscriptClient {
	client := resty.New().
		SetBaseURL(cfg.Transcript.BaseURL).
		SetTimeout(cfg.Transcript.Timeout)

	return &TranscriptClient{
		config: cfg,
		client: client,
	}
}

// transcriptResponse 字幕服務回應
type transcriptResponse struct {
	Transcript []struct {
		Text string `json:"text"`
	} `json:"transcript"`
}

// Fetch 抓取影片字幕並串接成單一文字
func (c *TranscriptClient) Fetch(ctx context.Context, videoID string) (string, error) {
	var result transcriptResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("videoId", videoID).
		SetResult(&result).
		Get("/transcript")

	if err != nil {
		return "", fmt.Errorf("transcript fetch failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("transcript service returned status %d", resp.StatusCode())
	}

	if len(result.Transcript) == 0 {
		return "", fmt.Errorf("no transcript available for video %s", videoID)
	}

	var sb strings.Builder
	for i, segment := range result.Transcript {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strings.TrimSpace(segment.Text))
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty transcript for video %s", videoID)
	}
	return text, nil
}
