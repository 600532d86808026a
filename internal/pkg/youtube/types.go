package youtube

// ChannelStats 平台频道的原始统计数据，数值字段保持上游的字符串形态
type ChannelStats struct {
	ChannelID       string
	Title           string
	CustomURL       string
	Description     string
	ThumbnailURL    string
	SubscriberCount string
	VideoCount      string
	ViewCount       string
}

type searchResponse struct {
	Items []struct {
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			CustomURL   string `json:"customUrl"`
			Description string `json:"description"`
			Thumbnails  struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			VideoCount      string `json:"videoCount"`
			ViewCount       string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}
