package api

import (
	"net/http"

	"risingcreators/internal/api/middleware"
	"risingcreators/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, jobSecret string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		creatorGroup := apiGroup.Group("/creators")
		{
			creatorGroup.Use(middleware.AuthMiddleware())
			{
				creatorGroup.GET("", group.CreatorHandler.ListCreators)
				creatorGroup.GET("/trending", group.CreatorHandler.GetTrending)
				creatorGroup.GET("/:creator_id", group.CreatorHandler.GetCreator)
				creatorGroup.GET("/:creator_id/snapshots", group.CreatorHandler.GetSnapshots)
			}
		}

		// 规则管理与手动触发需要 ADMIN 角色
		discoveryGroup := apiGroup.Group("/discovery")
		discoveryGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			discoveryGroup.POST("/rules", group.DiscoveryHandler.CreateRule)
			discoveryGroup.GET("/rules", group.DiscoveryHandler.ListRules)
			discoveryGroup.GET("/rules/:rule_id", group.DiscoveryHandler.GetRule)
			discoveryGroup.PUT("/rules/:rule_id", group.DiscoveryHandler.UpdateRule)
			discoveryGroup.DELETE("/rules/:rule_id", group.DiscoveryHandler.DeleteRule)
			discoveryGroup.POST("/rules/:rule_id/run", group.DiscoveryHandler.RunRule)
		}

		// 外部调度器走共享密钥
		jobGroup := apiGroup.Group("/jobs")
		jobGroup.Use(middleware.JobTokenMiddleware(jobSecret))
		{
			jobGroup.POST("/refresh-snapshots", group.JobHandler.RefreshSnapshots)
			jobGroup.POST("/auto-discovery", group.JobHandler.RunAutoDiscovery)
		}
	}

	return r
}
