package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds every environment-driven setting
type AppConfig struct {
	Port         string `envconfig:"PORT" default:"8080"`
	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`
	S3BucketName string `envconfig:"S3_BUCKET_NAME"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return &cfg
}
