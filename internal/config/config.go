package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis = "redis"
	StorageMongo = "mongo"
	StorageFile  = "file"
)

type Config struct {
	LogLevel       string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	AllowedOrigins []string `yaml:"allowed-origins" env:"ALLOWED_ORIGINS" env-separator:","`
	Storage        Storage  `yaml:"storage"`
	Redis          Redis    `yaml:"redis"`
	Mongo          Mongo    `yaml:"mongo"`
	File           File     `yaml:"file"`
	Session        Session  `yaml:"session"`
}

type Storage struct {
	Kind string `yaml:"kind" env:"STORAGE_KIND" env-default:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Mongo struct {
	URI        string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database   string `yaml:"database" env:"MONGO_DATABASE" env-default:"reversi"`
	Collection string `yaml:"collection" env:"MONGO_COLLECTION" env-default:"games"`
}

type File struct {
	Dir string `yaml:"dir" env:"FILE_DIR" env-default:"./games"`
}

type Session struct {
	PollInterval  time.Duration `yaml:"poll-interval" env:"SESSION_POLL_INTERVAL" env-default:"2s"`
	BotThinkDelay time.Duration `yaml:"bot-think-delay" env:"SESSION_BOT_THINK_DELAY" env-default:"2s"`
	BotDifficulty string        `yaml:"bot-difficulty" env:"SESSION_BOT_DIFFICULTY" env-default:"easy"`
	ManualRefresh bool          `yaml:"manual-refresh" env:"SESSION_MANUAL_REFRESH"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Storage.Kind {
	case StorageRedis, StorageMongo, StorageFile:
	default:
		return nil, fmt.Errorf("unknown storage kind %q", config.Storage.Kind)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
