package service

import (
	"math"
	"strconv"
	"strings"

	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/pkg/youtube"
)

// normalizeChannel 将平台原始频道记录映射为达人档案。
// 纯函数：数值字段解析失败一律取 0，不向外传播错误。
func normalizeChannel(channelID string, stats youtube.ChannelStats, niches []string) *model.DiscoveredCreator {
	followers := parseCount(stats.SubscriberCount)
	totalPosts := parseCount(stats.VideoCount)
	totalViews := parseCount64(stats.ViewCount)

	// 平均播放量分母至少为 1，规避除零
	denom := totalPosts
	if denom < 1 {
		denom = 1
	}
	avgViews := int(math.Round(float64(totalViews) / float64(denom)))

	// 没有自定义 handle 时退回平台分配的频道 id
	handle := strings.TrimPrefix(stats.CustomURL, "@")
	if handle == "" {
		handle = channelID
	}

	return &model.DiscoveredCreator{
		Platform:       consts.PlatformYouTube,
		PlatformUserID: channelID,
		DisplayName:    stats.Title,
		Handle:         handle,
		AvatarURL:      stats.ThumbnailURL,
		Bio:            truncateBio(stats.Description),
		Followers:      followers,
		TotalPosts:     totalPosts,
		AvgViews:       avgViews,
		Niches:         niches,
		Status:         consts.CreatorStatusActive,
	}
}

func truncateBio(bio string) string {
	runes := []rune(bio)
	if len(runes) <= consts.BioMaxLen {
		return bio
	}
	return string(runes[:consts.BioMaxLen])
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseCount64(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
