package service

import (
	"strings"
	"testing"

	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/pkg/youtube"

	"github.com/stretchr/testify/require"
)

func TestNormalizeChannel(t *testing.T) {
	record := normalizeChannel("UC001", youtube.ChannelStats{
		Title:           "Cooking Daily",
		CustomURL:       "@cookingdaily",
		Description:     "recipes",
		ThumbnailURL:    "https://img.example/uc001.jpg",
		SubscriberCount: "25000",
		VideoCount:      "120",
		ViewCount:       "3600000",
	}, []string{"food"})

	require.Equal(t, consts.PlatformYouTube, record.Platform)
	require.Equal(t, "UC001", record.PlatformUserID)
	require.Equal(t, "cookingdaily", record.Handle)
	require.Equal(t, 25000, record.Followers)
	require.Equal(t, 120, record.TotalPosts)
	require.Equal(t, 30000, record.AvgViews)
	require.Equal(t, []string{"food"}, record.Niches)
	require.Equal(t, consts.CreatorStatusActive, record.Status)
}

func TestNormalizeChannelZeroVideos(t *testing.T) {
	record := normalizeChannel("UC001", youtube.ChannelStats{
		SubscriberCount: "100",
		VideoCount:      "0",
		ViewCount:       "1234",
	}, nil)

	// 分母垫到 1，不会除零
	require.Equal(t, 1234, record.AvgViews)
	require.Equal(t, 0, record.TotalPosts)
}

func TestNormalizeChannelMalformedCounts(t *testing.T) {
	record := normalizeChannel("UC001", youtube.ChannelStats{
		SubscriberCount: "not-a-number",
		VideoCount:      "",
		ViewCount:       "-5",
	}, nil)

	require.Equal(t, 0, record.Followers)
	require.Equal(t, 0, record.TotalPosts)
	require.Equal(t, 0, record.AvgViews)
}

func TestNormalizeChannelHandleFallback(t *testing.T) {
	record := normalizeChannel("UC001", youtube.ChannelStats{CustomURL: ""}, nil)
	require.Equal(t, "UC001", record.Handle)
}

func TestNormalizeChannelBioTruncation(t *testing.T) {
	record := normalizeChannel("UC001", youtube.ChannelStats{
		Description: strings.Repeat("字", 600),
	}, nil)
	require.Equal(t, consts.BioMaxLen, len([]rune(record.Bio)))
}
