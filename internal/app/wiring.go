package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/andreyxaxa/Social-Submissions/config"
	"github.com/andreyxaxa/Social-Submissions/internal/infrastructure"
	"github.com/andreyxaxa/Social-Submissions/internal/infrastructure/inspector"
	infrakafka "github.com/andreyxaxa/Social-Submissions/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Social-Submissions/internal/repo"
	"github.com/andreyxaxa/Social-Submissions/internal/repo/persistent"
	"github.com/andreyxaxa/Social-Submissions/pkg/cloudinaryclient"
	"github.com/andreyxaxa/Social-Submissions/pkg/kafka/producer"
	"github.com/andreyxaxa/Social-Submissions/pkg/mongodb"
	"github.com/andreyxaxa/Social-Submissions/pkg/postgres"
	"github.com/andreyxaxa/Social-Submissions/pkg/s3client"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
)

const (
	schemeMongo    = "mongodb"
	schemePostgres = "postgres"
)

// dbScheme maps DATABASE_URL to the document store kind.
func dbScheme(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("dbScheme - url.Parse: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return schemeMongo, nil
	case "postgres", "postgresql":
		return schemePostgres, nil
	default:
		return "", fmt.Errorf("dbScheme - %q: %w", u.Scheme, errs.ErrUnsupportedScheme)
	}
}

func newSubmissionRepo(ctx context.Context, cfg *config.Config) (repo.SubmissionRepo, func(), error) {
	scheme, err := dbScheme(cfg.DB.URL)
	if err != nil {
		return nil, nil, err
	}

	connCtx, connCancel := context.WithTimeout(ctx, cfg.DB.ConnectTimeout)
	defer connCancel()

	switch scheme {
	case schemeMongo:
		mdb, err := mongodb.New(connCtx, cfg.DB.URL, cfg.DB.MongoDatabase, mongodb.ConnectTimeout(cfg.DB.ConnectTimeout))
		if err != nil {
			return nil, nil, fmt.Errorf("mongodb.New: %w", err)
		}

		r := persistent.NewSubmissionMongoRepo(mdb, cfg.DB.MongoCollection)
		err = r.EnsureIndexes(connCtx)
		if err != nil {
			_ = mdb.Close(context.Background())
			return nil, nil, fmt.Errorf("r.EnsureIndexes: %w", err)
		}

		return r, func() { _ = mdb.Close(context.Background()) }, nil
	default:
		pg, err := postgres.New(connCtx, cfg.DB.URL, postgres.MaxPoolSize(cfg.DB.PGPoolMax))
		if err != nil {
			return nil, nil, fmt.Errorf("postgres.New: %w", err)
		}

		r := persistent.NewSubmissionPostgresRepo(pg)
		err = r.Migrate(connCtx)
		if err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("r.Migrate: %w", err)
		}

		return r, pg.Close, nil
	}
}

func newImageStorage(ctx context.Context, cfg *config.Config) (repo.ImageStorage, error) {
	switch cfg.Storage.Backend {
	case config.StorageS3:
		s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
		defer s3Cancel()

		s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket,
			s3client.Region(cfg.S3.Region),
			s3client.UsePathStyle(cfg.S3.Endpoint != ""),
		)
		if err != nil {
			return nil, fmt.Errorf("s3client.New: %w", err)
		}

		return persistent.NewS3ImageStorage(s3c, cfg.S3.Bucket, cfg.S3.PublicBaseURL, cfg.S3.KeyPrefix), nil
	case config.StorageCloudinary:
		cc, err := cloudinaryclient.New(ctx, cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinaryclient.New: %w", err)
		}

		return persistent.NewCloudinaryImageStorage(cc, cfg.Cloudinary.Folder), nil
	default:
		s, err := persistent.NewLocalImageStorage(cfg.Storage.LocalDir, cfg.Storage.LocalURLPrefix)
		if err != nil {
			return nil, fmt.Errorf("persistent.NewLocalImageStorage: %w", err)
		}

		return s, nil
	}
}

func newEventsSender(ctx context.Context, cfg *config.Config) (infrastructure.EventsSender, error) {
	if !cfg.Kafka.Enabled {
		return infrakafka.NewNopEventProducer(), nil
	}

	p, err := producer.New(ctx, cfg.Kafka.Brokers, producer.AllowAutoTopicCreation(cfg.Kafka.AutoTopic))
	if err != nil {
		return nil, fmt.Errorf("producer.New: %w", err)
	}

	return infrakafka.NewEventProducer(p, cfg.Kafka.Topic), nil
}

func newInspector(cfg *config.Config) infrastructure.ContentInspector {
	if cfg.Upload.InspectContent {
		return inspector.New()
	}

	return inspector.NewNop()
}

func setOrNot(secret string) string {
	if secret == "" {
		return "Not set"
	}

	return "Set"
}
