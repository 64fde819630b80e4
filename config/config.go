package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageLocal      = "local"
	StorageS3         = "s3"
	StorageCloudinary = "cloudinary"
)

type (
	Config struct {
		HTTP       HTTP
		CORS       CORS
		Log        Log
		DB         DB
		Storage    Storage
		S3         S3
		Cloudinary Cloudinary
		Upload     Upload
		Kafka      Kafka
		Metrics    Metrics
		Swagger    Swagger
	}

	HTTP struct {
		Port            string        `env:"PORT" envDefault:"3000"`
		UsePreforkMode  bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"3s"`
		BodyLimit       int           `env:"HTTP_BODY_LIMIT" envDefault:"67108864"`
	}

	CORS struct {
		AllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	DB struct {
		URL             string        `env:"DATABASE_URL,required,notEmpty"`
		MongoDatabase   string        `env:"MONGO_DATABASE" envDefault:"submissions"`
		MongoCollection string        `env:"MONGO_COLLECTION" envDefault:"submissions"`
		ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
		PGPoolMax       int           `env:"PG_POOL_MAX" envDefault:"4"`
	}

	Storage struct {
		Backend        string `env:"STORAGE_BACKEND" envDefault:"local"`
		LocalDir       string `env:"STORAGE_LOCAL_DIR" envDefault:"uploads"`
		LocalURLPrefix string `env:"STORAGE_LOCAL_URL_PREFIX" envDefault:"/uploads"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT"`
		AccessKey      string        `env:"S3_ACCESS_KEY"`
		SecretKey      string        `env:"S3_SECRET_KEY"`
		Bucket         string        `env:"S3_BUCKET"`
		Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
		PublicBaseURL  string        `env:"S3_PUBLIC_BASE_URL"`
		KeyPrefix      string        `env:"S3_KEY_PREFIX" envDefault:"submissions"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Cloudinary struct {
		CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
		APIKey    string `env:"CLOUDINARY_API_KEY"`
		APISecret string `env:"CLOUDINARY_API_SECRET"`
		Folder    string `env:"CLOUDINARY_FOLDER" envDefault:"submissions"`
	}

	Upload struct {
		MaxFiles       int   `env:"UPLOAD_MAX_FILES" envDefault:"5"`
		MaxFileSize    int64 `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"10485760"`
		InspectContent bool  `env:"UPLOAD_INSPECT_CONTENT" envDefault:"false"`
	}

	Kafka struct {
		Enabled   bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers   []string `env:"KAFKA_BROKERS"`
		Topic     string   `env:"KAFKA_TOPIC"`
		AutoTopic bool     `env:"KAFKA_AUTO_TOPIC" envDefault:"false"`
	}

	Metrics struct {
		Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Validate checks the options that are only required by some backends.
func (c *Config) Validate() error {
	var errList []error

	switch c.Storage.Backend {
	case StorageLocal:
		if c.Storage.LocalDir == "" {
			errList = append(errList, errors.New("STORAGE_LOCAL_DIR is required for local storage"))
		}
	case StorageS3:
		for name, v := range map[string]string{
			"S3_ACCESS_KEY":      c.S3.AccessKey,
			"S3_SECRET_KEY":      c.S3.SecretKey,
			"S3_BUCKET":          c.S3.Bucket,
			"S3_PUBLIC_BASE_URL": c.S3.PublicBaseURL,
		} {
			if v == "" {
				errList = append(errList, fmt.Errorf("%s is required for s3 storage", name))
			}
		}
	case StorageCloudinary:
		for name, v := range map[string]string{
			"CLOUDINARY_CLOUD_NAME": c.Cloudinary.CloudName,
			"CLOUDINARY_API_KEY":    c.Cloudinary.APIKey,
			"CLOUDINARY_API_SECRET": c.Cloudinary.APISecret,
		} {
			if v == "" {
				errList = append(errList, fmt.Errorf("%s is required for cloudinary storage", name))
			}
		}
	default:
		errList = append(errList, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend))
	}

	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			errList = append(errList, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED"))
		}
		if c.Kafka.Topic == "" {
			errList = append(errList, errors.New("KAFKA_TOPIC is required when KAFKA_ENABLED"))
		}
	}

	if c.Upload.MaxFiles < 1 {
		errList = append(errList, errors.New("UPLOAD_MAX_FILES must be positive"))
	}
	if c.Upload.MaxFileSize < 1 {
		errList = append(errList, errors.New("UPLOAD_MAX_FILE_SIZE must be positive"))
	}

	return errors.Join(errList...)
}
