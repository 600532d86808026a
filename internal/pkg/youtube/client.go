package youtube

import (
	"context"
	"strconv"
	"strings"
	"time"

	"risingcreators/internal/api/config"
	"risingcreators/internal/pkg/consts"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ErrUpstream 平台 API 不可达或返回了无法使用的响应。
// 调用方应将其视为单次查询级别的失败，继续处理后续查询。
var ErrUpstream = errors.New("youtube: upstream request failed")

type Client struct {
	httpClient *resty.Client
	apiKey     string
	pageSize   int
}

func NewClient(cfg config.YouTubeConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     cfg.APIKey,
		pageSize:   cfg.SearchPageSize,
	}
}

// SearchChannels 按关键词搜索频道，返回频道 id 列表。空结果不是错误。
func (s *Client) SearchChannels(ctx context.Context, query string) ([]string, error) {
	var result searchResponse

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"type":       "channel",
			"maxResults": strconv.Itoa(s.pageSize),
			"q":          query,
			"key":        s.apiKey,
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		return nil, errors.Wrapf(ErrUpstream, "search %q: %v", query, err)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUpstream, "search %q: status %d", query, resp.StatusCode())
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Snippet.ChannelID != "" {
			ids = append(ids, item.Snippet.ChannelID)
		}
	}
	return ids, nil
}

// FetchChannelStats 批量拉取频道统计，一次请求最多 50 个 id。
// 上游可能悄悄吞掉已注销的频道，返回的 map 以实际存在的 id 为准。
func (s *Client) FetchChannelStats(ctx context.Context, ids []string) (map[string]ChannelStats, error) {
	if len(ids) == 0 {
		return map[string]ChannelStats{}, nil
	}
	if len(ids) > consts.MaxStatsBatch {
		ids = ids[:consts.MaxStatsBatch]
	}

	var result channelsResponse

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,statistics",
			"id":   strings.Join(ids, ","),
			"key":  s.apiKey,
		}).
		SetResult(&result).
		Get("/channels")
	if err != nil {
		return nil, errors.Wrapf(ErrUpstream, "channels: %v", err)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUpstream, "channels: status %d", resp.StatusCode())
	}
	if len(result.Items) == 0 {
		return nil, errors.Wrap(ErrUpstream, "channels: empty payload")
	}

	stats := make(map[string]ChannelStats, len(result.Items))
	for _, item := range result.Items {
		stats[item.ID] = ChannelStats{
			ChannelID:       item.ID,
			Title:           item.Snippet.Title,
			CustomURL:       item.Snippet.CustomURL,
			Description:     item.Snippet.Description,
			ThumbnailURL:    item.Snippet.Thumbnails.Default.URL,
			SubscriberCount: item.Statistics.SubscriberCount,
			VideoCount:      item.Statistics.VideoCount,
			ViewCount:       item.Statistics.ViewCount,
		}
	}
	return stats, nil
}
