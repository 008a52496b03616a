package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"nceerrors/internal/domain/errorrecord"
)

type ErrorRecordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewErrorRecordRepository(db *sql.DB, log *slog.Logger) *ErrorRecordRepository {
	return &ErrorRecordRepository{
		db:  db,
		log: log.With("component", "errorrecord_repository"),
	}
}

func (r *ErrorRecordRepository) List(ctx context.Context, limit, offset int) ([]errorrecord.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT error_id, error_description, category, customer_overview_type, error_date, error_count
		FROM sheet1_errors
		ORDER BY error_id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	records := make([]errorrecord.Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения записей: %w", err)
	}

	return records, nil
}

func (r *ErrorRecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sheet1_errors").Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета записей: %w", err)
	}
	return count, nil
}

func (r *ErrorRecordRepository) Get(ctx context.Context, id int64) (*errorrecord.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT error_id, error_description, category, customer_overview_type, error_date, error_count
		FROM sheet1_errors
		WHERE error_id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorrecord.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *ErrorRecordRepository) Create(ctx context.Context, rec *errorrecord.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO sheet1_errors (error_description, category, customer_overview_type, error_date, error_count)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Description, rec.Category, rec.CustomerOverviewType, rec.Date.Format(errorrecord.DateLayout), rec.Count)
	if err != nil {
		r.log.Error("failed to create record", "category", rec.Category, "error", err)
		return 0, fmt.Errorf("ошибка сохранения записи: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID записи: %w", err)
	}
	rec.ID = id

	return id, nil
}

func (r *ErrorRecordRepository) Update(ctx context.Context, rec *errorrecord.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sheet1_errors
		SET error_description = ?, category = ?, customer_overview_type = ?, error_date = ?, error_count = ?
		WHERE error_id = ?
	`, rec.Description, rec.Category, rec.CustomerOverviewType, rec.Date.Format(errorrecord.DateLayout), rec.Count, rec.ID)
	if err != nil {
		r.log.Error("failed to update record", "error_id", rec.ID, "error", err)
		return fmt.Errorf("ошибка обновления записи: %w", err)
	}

	return mustAffect(res)
}

func (r *ErrorRecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sheet1_errors WHERE error_id = ?", id)
	if err != nil {
		r.log.Error("failed to delete record", "error_id", id, "error", err)
		return fmt.Errorf("ошибка удаления записи: %w", err)
	}

	return mustAffect(res)
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа измененных строк: %w", err)
	}
	if n == 0 {
		return errorrecord.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*errorrecord.Record, error) {
	var (
		rec  errorrecord.Record
		date string
	)

	if err := row.Scan(&rec.ID, &rec.Description, &rec.Category,
		&rec.CustomerOverviewType, &date, &rec.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("ошибка сканирования записи: %w", err)
	}

	parsed, err := time.Parse(errorrecord.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга даты %q: %w", date, err)
	}
	rec.Date = parsed

	return &rec, nil
}
