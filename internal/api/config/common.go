package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Jobs    JobsConfig    `mapstructure:"jobs"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 运营端令牌配置，密钥与外部身份服务共享
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// YouTubeConfig 平台 API 配置
type YouTubeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	SearchPageSize int    `mapstructure:"search_page_size"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	// QueryIntervalMs 相邻搜索请求之间的最小间隔
	QueryIntervalMs int `mapstructure:"query_interval_ms"`
}

// JobsConfig 定时任务配置
type JobsConfig struct {
	// RefreshSecret 为空时刷新接口不做鉴权
	RefreshSecret     string `mapstructure:"refresh_secret"`
	RefreshBatchSize  int    `mapstructure:"refresh_batch_size"`
	RefreshSchedule   string `mapstructure:"refresh_schedule"`
	DiscoverySchedule string `mapstructure:"discovery_schedule"`
}
