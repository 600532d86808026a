package dto

import "risingcreators/internal/model"

type CreatorListQuery struct {
	Status       string `form:"status"`
	Niche        string `form:"niche"`
	MinFollowers int    `form:"min_followers" binding:"gte=0"`
	MaxFollowers int    `form:"max_followers" binding:"gte=0"`
	Page         int    `form:"page" binding:"gte=0"`
	PageSize     int    `form:"page_size" binding:"gte=0,lte=100"`
}

type CreatorListDTO struct {
	Items []*model.DiscoveredCreator `json:"items"`
	Total int64                      `json:"total"`
}
