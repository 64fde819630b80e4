package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/andreyxaxa/Social-Submissions/pkg/postgres"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	submissionsTable = "submissions"

	// Columns
	idColumn             = "id"
	nameColumn           = "name"
	socialPlatformColumn = "social_platform"
	socialHandleColumn   = "social_handle"
	imagesColumn         = "images"
	createdAtColumn      = "created_at"
)

var submissionsSchema = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id              uuid        PRIMARY KEY DEFAULT gen_random_uuid(),
		name            text        NOT NULL,
		social_platform text        NOT NULL,
		social_handle   text        NOT NULL,
		images          text[]      NOT NULL,
		created_at      timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS submissions_created_at_idx ON submissions (created_at DESC)`,
}

type SubmissionPostgresRepo struct {
	*postgres.Postgres
}

func NewSubmissionPostgresRepo(pg *postgres.Postgres) *SubmissionPostgresRepo {
	return &SubmissionPostgresRepo{pg}
}

// Migrate creates the table and index when they are missing.
func (r *SubmissionPostgresRepo) Migrate(ctx context.Context) error {
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		executor := r.GetExecutor(ctx)

		for _, stmt := range submissionsSchema {
			if _, err := executor.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("executor.Exec: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Migrate: %w", err)
	}

	return nil
}

func (r *SubmissionPostgresRepo) Create(ctx context.Context, s *entity.Submission) error {
	sql, args, err := r.Builder.
		Insert(submissionsTable).
		Columns(
			nameColumn,
			socialPlatformColumn,
			socialHandleColumn,
			imagesColumn,
			createdAtColumn,
		).
		Values(
			s.Name,
			string(s.SocialPlatform),
			s.SocialHandle,
			s.Images,
			s.CreatedAt,
		).
		Suffix("RETURNING " + idColumn + "::text").
		ToSql()
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	err = executor.QueryRow(ctx, sql, args...).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Create - executor.QueryRow: %w", err)
	}

	return nil
}

func (r *SubmissionPostgresRepo) selectSubmissions() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			idColumn+"::text",
			nameColumn,
			socialPlatformColumn,
			socialHandleColumn,
			imagesColumn,
			createdAtColumn,
		).
		From(submissionsTable)
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var (
		s        entity.Submission
		platform string
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&platform,
		&s.SocialHandle,
		&s.Images,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.SocialPlatform = entity.Platform(platform)
	s.CreatedAt = s.CreatedAt.UTC()
	if s.Images == nil {
		s.Images = []string{}
	}

	return &s, nil
}

func (r *SubmissionPostgresRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("SubmissionPostgresRepo - GetByID - uuid.Parse: %w", errs.ErrRecordNotFound)
	}

	sql, args, err := r.selectSubmissions().
		Where(squirrel.Eq{idColumn: uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("SubmissionPostgresRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	s, err := scanSubmission(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("SubmissionPostgresRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("SubmissionPostgresRepo - GetByID - executor.QueryRow: %w", err)
	}

	return s, nil
}

func (r *SubmissionPostgresRepo) List(ctx context.Context) ([]*entity.Submission, error) {
	sql, args, err := r.selectSubmissions().
		OrderBy(createdAtColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("SubmissionPostgresRepo - List - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("SubmissionPostgresRepo - List - executor.Query: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("SubmissionPostgresRepo - List - rows.Scan: %w", err)
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SubmissionPostgresRepo - List - rows.Err: %w", err)
	}

	return out, nil
}

func (r *SubmissionPostgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Delete - uuid.Parse: %w", errs.ErrRecordNotFound)
	}

	sql, args, err := r.Builder.
		Delete(submissionsTable).
		Where(squirrel.Eq{idColumn: uid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("SubmissionPostgresRepo - Delete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SubmissionPostgresRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}
