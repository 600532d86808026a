package wire

import (
	"time"

	"risingcreators/internal/api"
	"risingcreators/internal/api/config"
	"risingcreators/internal/api/handler"
	"risingcreators/internal/job"
	"risingcreators/internal/pkg/cron"
	"risingcreators/internal/pkg/ratelimit"
	"risingcreators/internal/pkg/redis"
	"risingcreators/internal/pkg/youtube"
	"risingcreators/internal/repository"
	"risingcreators/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	ruleRepo := repository.NewDiscoveryRuleRepo(db)
	creatorRepo := repository.NewDiscoveredCreatorRepo(db)
	snapshotRepo := repository.NewCreatorSnapshotRepo(db)

	platformClient := youtube.NewClient(cfg.YouTube)
	queryGate := ratelimit.NewGate(time.Duration(cfg.YouTube.QueryIntervalMs) * time.Millisecond)

	creatorService := service.NewCreatorService(creatorRepo, snapshotRepo, redis.NewListCache())
	discoveryService := service.NewDiscoveryService(
		ruleRepo,
		creatorRepo,
		snapshotRepo,
		platformClient,
		queryGate,
		creatorService,
		cfg.Jobs.RefreshBatchSize,
	)

	handlers := &api.HandlersGroup{
		DiscoveryHandler: handler.NewDiscoveryHandler(discoveryService),
		CreatorHandler:   handler.NewCreatorHandler(creatorService),
		JobHandler:       handler.NewJobHandler(discoveryService),
	}

	router := api.SetupRouter(handlers, cfg.Jobs.RefreshSecret)

	cronMgr := cron.NewCronManager(
		job.NewAutoDiscoveryJob(discoveryService),
		job.NewSnapshotRefreshJob(discoveryService),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
