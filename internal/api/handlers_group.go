package api

import "risingcreators/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	DiscoveryHandler *handler.DiscoveryHandler
	CreatorHandler   *handler.CreatorHandler
	JobHandler       *handler.JobHandler
}
