package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"nceerrors/internal/domain/errorrecord"
)

type ErrorRecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewErrorRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *ErrorRecordRepository {
	return &ErrorRecordRepository{
		pool: pool,
		log:  log.With("component", "errorrecord_repository"),
	}
}

func (r *ErrorRecordRepository) List(ctx context.Context, limit, offset int) ([]errorrecord.Record, error) {
	const query = `
		SELECT error_id, error_description, category, customer_overview_type, error_date, error_count
		FROM sheet1_errors
		ORDER BY error_id
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("failed to list records", "limit", limit, "offset", offset, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]errorrecord.Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func (r *ErrorRecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sheet1_errors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func (r *ErrorRecordRepository) Get(ctx context.Context, id int64) (*errorrecord.Record, error) {
	const query = `
		SELECT error_id, error_description, category, customer_overview_type, error_date, error_count
		FROM sheet1_errors
		WHERE error_id = $1`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorrecord.ErrNotFound
		}
		r.log.Error("failed to get record", "error_id", id, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *ErrorRecordRepository) Create(ctx context.Context, rec *errorrecord.Record) (int64, error) {
	const query = `
		INSERT INTO sheet1_errors (error_description, category, customer_overview_type, error_date, error_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING error_id`

	err := r.pool.QueryRow(ctx, query,
		rec.Description, rec.Category, rec.CustomerOverviewType, rec.Date, rec.Count,
	).Scan(&rec.ID)
	if err != nil {
		r.log.Error("failed to create record", "category", rec.Category, "error", err)
		return 0, fmt.Errorf("create record: %w", err)
	}

	return rec.ID, nil
}

func (r *ErrorRecordRepository) Update(ctx context.Context, rec *errorrecord.Record) error {
	const query = `
		UPDATE sheet1_errors
		SET error_description = $1,
		    category = $2,
		    customer_overview_type = $3,
		    error_date = $4,
		    error_count = $5
		WHERE error_id = $6`

	tag, err := r.pool.Exec(ctx, query,
		rec.Description, rec.Category, rec.CustomerOverviewType, rec.Date, rec.Count, rec.ID,
	)
	if err != nil {
		r.log.Error("failed to update record", "error_id", rec.ID, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errorrecord.ErrNotFound
	}
	return nil
}

func (r *ErrorRecordRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sheet1_errors WHERE error_id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete record", "error_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errorrecord.ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (*errorrecord.Record, error) {
	var rec errorrecord.Record
	err := row.Scan(
		&rec.ID,
		&rec.Description,
		&rec.Category,
		&rec.CustomerOverviewType,
		&rec.Date,
		&rec.Count,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
