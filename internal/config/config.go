package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

const insecureDefaultJWTSecret = "startup_hub_secret"

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Image      ImageConfig      `mapstructure:"image"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	PublicData PublicDataConfig `mapstructure:"public_data"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	TrustedProxies string `mapstructure:"trusted_proxies"` // 逗号、分号或空白分隔，留空不信任任何代理
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type StorageConfig struct {
	Driver string             `mapstructure:"driver"` // local, s3
	Local  LocalStorageConfig `mapstructure:"local"`
	S3     S3StorageConfig    `mapstructure:"s3"`
}

type LocalStorageConfig struct {
	Path      string `mapstructure:"path"`
	URLPrefix string `mapstructure:"url_prefix"`
}

// S3StorageConfig 同样适用于 Cloudflare R2 等兼容 S3 协议的存储
type S3StorageConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PublicURL       string `mapstructure:"public_url"`
	KeyPrefix       string `mapstructure:"key_prefix"`
}

type ImageConfig struct {
	MaxDimension int `mapstructure:"max_dimension"`
	MaxUploadMB  int `mapstructure:"max_upload_mb"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled                 bool    `mapstructure:"enabled"`
	WriteRPS                float64 `mapstructure:"write_rps"`
	WriteBurst              int     `mapstructure:"write_burst"`
	FavoriteIntervalSeconds int     `mapstructure:"favorite_interval_seconds"`
}

type PublicDataConfig struct {
	ServiceKey     string `mapstructure:"service_key"`
	NoticeURL      string `mapstructure:"notice_url"`
	PlaceURL       string `mapstructure:"place_url"`
	DefaultArea    string `mapstructure:"default_area"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/startup_hub.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "startup_hub")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.path", "uploads/post_images")
	v.SetDefault("storage.local.url_prefix", "/media/")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "auto")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("storage.s3.public_url", "")
	v.SetDefault("storage.s3.key_prefix", "post_images")
	v.SetDefault("image.max_dimension", 700)
	v.SetDefault("image.max_upload_mb", 10)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "startup_hub")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.write_rps", 2)
	v.SetDefault("rate_limit.write_burst", 5)
	v.SetDefault("rate_limit.favorite_interval_seconds", 1)
	v.SetDefault("public_data.service_key", "")
	v.SetDefault("public_data.notice_url", "http://openapi.kised.or.kr/openapi/service/rest/ContentsService/getNoticeList")
	v.SetDefault("public_data.place_url", "http://apis.data.go.kr/B552735/workspaceErumService/getAreaCenterList")
	v.SetDefault("public_data.default_area", "제주")
	v.SetDefault("public_data.timeout_seconds", 15)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 STARTUP_HUB_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 STARTUP_HUB_SERVER_PORT
	v.SetEnvPrefix("STARTUP_HUB")
	v.AutomaticEnv()

	// 将 key 中的 "." 替换为 "_"，这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	if tempConfig.Server.Mode != "release" && tempConfig.JWT.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		tempConfig.JWT.Secret = insecureDefaultJWTSecret
	}
	if tempConfig.Image.MaxDimension <= 0 {
		tempConfig.Image.MaxDimension = 700
	}

	appConfig.Store(&tempConfig)
}

// Set 直接替换当前配置快照，主要用于测试与命令行覆盖。
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

func enforceJWTSecretSafety() {
	// 首次启动安全检查：如果是 release 模式，拦截不安全的 JWT Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == insecureDefaultJWTSecret {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！\n请设置环境变量 STARTUP_HUB_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
	}
}
