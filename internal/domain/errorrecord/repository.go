package errorrecord

import (
	"context"
)

// Repository хранилище записей об ошибках
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, rec *Record) (int64, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
}

// TotalCache кэширует общее количество записей между запросами списка.
//
// GetTotal возвращает текущее поколение кэша даже при промахе. SetTotal
// записывает значение, только если поколение не сменилось с момента чтения:
// Invalidate увеличивает поколение, поэтому счетчик, посчитанный до
// изменения данных, в кэш не попадает.
type TotalCache interface {
	GetTotal(ctx context.Context) (total int, gen int64, ok bool, err error)
	SetTotal(ctx context.Context, total int, gen int64) error
	Invalidate(ctx context.Context) error
}

// NopCache - кэш, который ничего не хранит
type NopCache struct{}

func (NopCache) GetTotal(context.Context) (int, int64, bool, error) { return 0, 0, false, nil }
func (NopCache) SetTotal(context.Context, int, int64) error         { return nil }
func (NopCache) Invalidate(context.Context) error                   { return nil }
