package consts

const (
	PlatformYouTube = "youtube"
)

const (
	CreatorStatusActive   = "active"
	CreatorStatusInactive = "inactive"
)

const (
	// MaxStatsBatch 平台批量查询接口单次 id 上限
	MaxStatsBatch = 50
	// BioMaxLen 简介截断长度
	BioMaxLen = 500
)
