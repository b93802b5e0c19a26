// Package config loads the server configuration from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"

	DefaultPort = "3000"
)

// Config is the root configuration. Every field can be set in the YAML file named by
// CONFIG_PATH and overridden by its environment variable.
type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"dev"`
	Port    string  `yaml:"port" env:"PORT" env-default:"3000"`
	Storage Storage `yaml:"storage"`
}

// Storage selects the backend and holds the settings for both
type Storage struct {
	Driver   string      `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	Mongo    MongoConfig `yaml:"mongo"`
	Postgres DBConfig    `yaml:"postgres"`
}

// MongoConfig holds the document store connection settings
type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"tuition"`
}

// DBConfig holds PostgreSQL connection parameters
type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
}

// DSN builds the pgx connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Load reads the configuration. A PORT that is present but empty falls back to DefaultPort.
func Load() (*Config, error) {
	var cfg Config

	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = DefaultPort
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMongo:
		if c.Storage.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI must be set for the mongo storage driver")
		}
	case DriverPostgres:
		pg := c.Storage.Postgres
		if pg.Host == "" || pg.Port == "" || pg.User == "" || pg.Name == "" {
			return fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", c.Storage.Driver, DriverMongo, DriverPostgres)
	}
	return nil
}

// IsDev reports whether the server runs with development logging and gin debug mode
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}
