package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

// StorageConfig selects and parameterises the key-value backend.
// Driver is one of: file, sqlite, redis, mongo, memory.
type StorageConfig struct {
	Driver     string `env:"STORAGE_DRIVER, default=file"`
	Dir        string `env:"STORAGE_DIR,    default=./data"`
	SQLitePath string `env:"SQLITE_PATH,    default=./data/tasktracker.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tasktracker"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
