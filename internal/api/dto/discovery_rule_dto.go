package dto

// RuleDTO 创建/编辑发现规则的请求体
type RuleDTO struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Queries      []string `json:"queries" binding:"required,min=1,dive,required"`
	Niches       []string `json:"niches"`
	MinFollowers int      `json:"min_followers" binding:"gte=0"`
	MaxFollowers int      `json:"max_followers" binding:"gtefield=MinFollowers"`
	IsActive     *bool    `json:"is_active"`
}

// RunSummary 一次规则执行的结果汇总。
// found 统计通过粉丝量过滤的记录数，imported 只统计落库成功的记录数。
type RunSummary struct {
	Found    int `json:"found"`
	Imported int `json:"imported"`
}
