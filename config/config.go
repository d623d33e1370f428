package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string   `yaml:"service_name" validate:"required"`
	LogLevel    string   `yaml:"loglevel" validate:"required"`
	Host        string   `yaml:"host" validate:"required"`
	Port        string   `yaml:"port" validate:"required"`
	Session     Session  `yaml:"session" validate:"required"`
	Web         Web      `yaml:"web" validate:"required"`
	Database    Database `yaml:"database" validate:"required"`
}

// Session holds the session-cookie configuration.
type Session struct {
	CookieName    string `yaml:"cookie_name" validate:"required"`
	Secret        string `yaml:"secret" validate:"required"`
	MaxAgeSeconds int    `yaml:"max_age_seconds" validate:"gte=0"`
}

// Web holds the view and static asset locations.
type Web struct {
	TemplatesDir string `yaml:"templates_dir" validate:"required"`
	StaticDir    string `yaml:"static_dir" validate:"required"`
}

type Database struct {
	Type string `yaml:"type" validate:"required,oneof=memory mongo postgres"`
	// For MongoDB
	MongoDB MongoDBConfig `yaml:"mongodb_config" validate:"omitempty"`
	// For PostgreSQL
	Postgres PostgresConfig `yaml:"postgres_config" validate:"omitempty"`
}

// MongoDBConfig holds the MongoDB connection configuration.
type MongoDBConfig struct {
	DSN          string        `yaml:"dsn"`
	DatabaseName string        `yaml:"database_name"`
	Timeout      time.Duration `yaml:"timeout"`
}

type PostgresConfig struct {
	DSN     string                `yaml:"dsn"`
	Options PostgresServerOptions `yaml:"postgres_server_options"`
}

type PostgresServerOptions struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
