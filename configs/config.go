package configs

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Remote   `mapstructure:"remote"`
	Session  `mapstructure:"session"`
	Redis    `mapstructure:"redis"`
	Postgres `mapstructure:"postgres"`
}

// App struct
type App struct {
	Debug    bool   `mapstructure:"debug"`
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	Timezone string `mapstructure:"timezone"`
}

// Remote struct - meal backend connection
type Remote struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// Session struct - where the client session is persisted
type Session struct {
	Backend   string `mapstructure:"backend"` // memory, redis or postgres
	Namespace string `mapstructure:"namespace"`
}

// Redis struct
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Session backends
const (
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

var config Config

// defaults registers every key so environment variables are honored even
// when the config file does not mention them
var defaults = map[string]interface{}{
	"app.debug":         false,
	"app.env":           "local",
	"app.port":          "9089",
	"app.timezone":      "Asia/Shanghai",
	"remote.base_url":   "http://localhost:8080/backend/api",
	"remote.timeout":    5,
	"session.backend":   SessionBackendMemory,
	"session.namespace": "default",
	"redis.addr":        "127.0.0.1:6379",
	"redis.password":    "",
	"redis.db":          0,
	"postgres.host":     "",
	"postgres.port":     "5432",
	"postgres.username": "",
	"postgres.password": "",
	"postgres.database": "",
	"postgres.sslmode":  false,
}

// InitViper func - loads config.<env>.yaml (or config.yaml when env is empty)
// from path, then applies a .env file and environment overrides
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file loaded")
	}

	viper.Reset()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	name := "config"
	if env != "" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		logrus.Warnf("Config file %s not found in %s, using defaults and environment", name, path)
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			logrus.Info("Config file has changed: ", e.Name)
		})
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
