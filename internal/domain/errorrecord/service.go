package errorrecord

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

const DefaultLimit = 20

type Servicer interface {
	List(ctx context.Context, page, limit int) (Page, error)
	Find(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, in Input) (int64, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, inputs []Input) (ImportResult, error)
}

// ImportResult результат пакетной загрузки
type ImportResult struct {
	Imported int
	Skipped  int
}

// Service бизнес-логика записей об ошибках
type Service struct {
	repo  Repository
	cache TotalCache
	log   *slog.Logger
}

// NewService создает сервис. cache может быть nil.
func NewService(repo Repository, cache TotalCache, log *slog.Logger) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "errorrecord_service"),
	}
}

// LastPage номер последней страницы, не меньше 1
func LastPage(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// List возвращает страницу записей. Номер страницы приводится к [1, LastPage].
func (s *Service) List(ctx context.Context, page, limit int) (Page, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	total, err := s.total(ctx)
	if err != nil {
		return Page{}, err
	}

	last := LastPage(total, limit)
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	records, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		s.log.Error("failed to list records", "page", page, "limit", limit, "error", err)
		return Page{}, fmt.Errorf("list records: %w", err)
	}

	items := make([]Item, len(records))
	for i, r := range records {
		items[i] = r.ToItem()
	}

	return Page{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *Service) total(ctx context.Context) (int, error) {
	total, gen, ok, cacheErr := s.cache.GetTotal(ctx)
	if cacheErr != nil {
		s.log.Warn("total cache read failed", "error", cacheErr)
	} else if ok {
		return total, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("failed to count records", "error", err)
		return 0, fmt.Errorf("count records: %w", err)
	}

	// без поколения нельзя отличить устаревший счетчик
	if cacheErr != nil {
		return total, nil
	}
	if err := s.cache.SetTotal(ctx, total, gen); err != nil {
		s.log.Warn("total cache write failed", "error", err)
	}

	return total, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("total cache invalidation failed", "error", err)
	}
}

// Find возвращает запись по ID
func (s *Service) Find(ctx context.Context, id int64) (*Item, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find record", "error_id", id, "error", err)
		return nil, fmt.Errorf("find record: %w", err)
	}

	item := rec.ToItem()
	return &item, nil
}

// Create создает запись и возвращает ее ID
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	rec, err := in.ToRecord()
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.log.Error("failed to create record", "category", rec.Category, "error", err)
		return 0, fmt.Errorf("create record: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info("record created", "error_id", id)
	return id, nil
}

// Update перезаписывает все поля записи
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	rec, err := in.ToRecord()
	if err != nil {
		return err
	}
	rec.ID = id

	if err := s.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update record", "error_id", id, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "error_id", id)
	return nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "error_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info("record deleted", "error_id", id)
	return nil
}

// Import загружает записи пачкой. Строки с пустыми или некорректными
// полями пропускаются, ошибка хранилища прерывает загрузку.
func (s *Service) Import(ctx context.Context, inputs []Input) (ImportResult, error) {
	var res ImportResult
	defer s.invalidate(ctx)

	for i, in := range inputs {
		rec, err := in.ToRecord()
		if err != nil {
			s.log.Debug("skipping row", "row", i, "error", err)
			res.Skipped++
			continue
		}

		if _, err := s.repo.Create(ctx, rec); err != nil {
			return res, fmt.Errorf("import row %d: %w", i, err)
		}
		res.Imported++
	}

	s.log.Info("import finished", "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}
