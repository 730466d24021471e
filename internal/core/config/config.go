package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadTimeoutSec    int
	WriteTimeoutSec   int
	IdleTimeoutSec    int
	RequestTimeoutSec int
	RateLimitRPS      float64
	RateLimitBurst    int
	LoginRPS          float64 // 每 IP 登录限速
	LoginBurst        int
	MaxConcurrent     int64
	MaxBodyBytes      int64
	CORSOrigins       []string
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // 为空则只输出到 stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Session struct {
	Secret     string
	Issuer     string
	TTLMin     int
	CookieName string
	Secure     bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type SeedMechanic struct {
	Name           string
	Phone          string
	Specialization string
}

type SeedWorkType struct {
	Name        string
	Description string
}

// Seed 启动时的默认数据：管理员账号 + 参考数据
type Seed struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	WorkTypes     []SeedWorkType
	Mechanics     []SeedMechanic
}

type Config struct {
	App     App
	Log     Log
	Session Session
	DB      DB
	Redis   Redis `mapstructure:"redis"`
	Seed    Seed
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "autoshop")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.requesttimeoutsec", 10)
	v.SetDefault("app.http.ratelimitrps", 200)
	v.SetDefault("app.http.ratelimitburst", 400)
	v.SetDefault("app.http.loginrps", 1)
	v.SetDefault("app.http.loginburst", 10)
	v.SetDefault("app.http.maxconcurrent", 300)
	v.SetDefault("app.http.maxbodybytes", 1<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 5)
	v.SetDefault("log.maxagedays", 30)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.issuer", "autoshop")
	v.SetDefault("session.ttlmin", 7*24*60)
	v.SetDefault("session.cookiename", "autoshop_session")
	v.SetDefault("session.secure", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "autoshop.db")
	v.SetDefault("db.maxopenconns", 10)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")

	v.SetDefault("seed.adminusername", "admin")
	v.SetDefault("seed.adminpassword", "")
	v.SetDefault("seed.adminemail", "")
}

// Read 读取 yaml + APP_ 前缀环境变量；文件不存在时只用默认值和环境变量
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	c, err := Read(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	return c
}
