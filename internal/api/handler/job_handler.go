package handler

import (
	"risingcreators/internal/pkg/response"
	"risingcreators/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler 暴露给外部调度器的任务触发入口
type JobHandler struct {
	discoverySvc service.DiscoveryService
}

func NewJobHandler(discoverySvc service.DiscoveryService) *JobHandler {
	return &JobHandler{
		discoverySvc: discoverySvc,
	}
}

func (s *JobHandler) RefreshSnapshots(c *gin.Context) {
	updated, err := s.discoverySvc.RefreshSnapshots(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if updated == 0 {
		response.Success(c, gin.H{"message": "No creators to update"})
		return
	}
	response.Success(c, gin.H{"success": true, "updated": updated})
}

func (s *JobHandler) RunAutoDiscovery(c *gin.Context) {
	summary, err := s.discoverySvc.RunActiveRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"success": true, "found": summary.Found, "imported": summary.Imported})
}
