package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment   string `envconfig:"APP_ENV" default:"production"`
	ServicePort   string `envconfig:"PORT" default:"5000"`
	MetricsPort   string `envconfig:"METRICS_PORT" default:"9090"`
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	URI    string `envconfig:"MONGO_URI" required:"true"`
	DBName string `envconfig:"DB_NAME" default:"catalog"`
}

type KafkaConfig struct {
	BrokerAddress string `envconfig:"BROKER_ADDRESS"`
	BrokerTopic   string `envconfig:"BROKER_TOPIC" default:"catalog-events"`
}

type TracingConfig struct {
	CollectorHost string `envconfig:"COLLECTOR_HOST"`
}

// CreateNewConfig reads the optional .env file and then the process environment.
// A missing MONGO_URI is reported as an error.
func CreateNewConfig() (*Config, error) {
	godotenv.Load(".env")

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.Environment == "development"
}

func (c *Config) EventsEnabled() bool {
	return c.KafkaConfig.BrokerAddress != ""
}
