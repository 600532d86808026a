package consts

const (
	TrendingCreatorsKey = "creator:trending:"
)

const (
	SnapshotRefreshLock = "lock:snapshot:refresh"
	AutoDiscoveryLock   = "lock:discovery:run"

	SnapshotRefreshLastRun = "job:snapshot:refresh:last_run"
)
