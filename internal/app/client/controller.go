package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

const (
	loadFailedPrefix   = "Failed to load data: "
	submitFailedPrefix = "Submit failed: "
	deleteFailedPrefix = "Delete failed: "

	deletePrompt = "Delete this record?"
)

// Confirmer спрашивает у пользователя подтверждение
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc адаптер функции к Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Controller хранит текущую страницу записей и синхронизирует ее с сервером.
// Мьютекс не удерживается во время сетевых вызовов.
type Controller struct {
	remote    RemoteService
	confirmer Confirmer
	log       *slog.Logger

	mu       sync.Mutex
	items    []ErrorRecord
	total    int
	page     int
	limit    int
	errMsg   string
	inFlight int
	seq      uint64 // последний выданный номер загрузки
	applied  uint64 // номер последней примененной загрузки
}

func NewController(remote RemoteService, confirmer Confirmer, limit int, log *slog.Logger) *Controller {
	if limit < 1 {
		limit = 20
	}
	return &Controller{
		remote:    remote,
		confirmer: confirmer,
		log:       log.With(slog.String("component", "controller")),
		page:      1,
		limit:     limit,
	}
}

// State снимок состояния для отрисовки
func (c *Controller) State() PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]ErrorRecord, len(c.items))
	copy(items, c.items)

	return PageState{
		Items:   items,
		Total:   c.total,
		Page:    c.page,
		Limit:   c.limit,
		Loading: c.inFlight > 0,
		ErrMsg:  c.errMsg,
	}
}

// SetError показывает сообщение в баннере до следующей попытки
func (c *Controller) SetError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}

func (c *Controller) ClearError() {
	c.SetError("")
}

// LoadPage запрашивает страницу p. Ответ применяется, только если за это
// время не была применена более поздняя загрузка.
func (c *Controller) LoadPage(ctx context.Context, p int) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.inFlight++
	c.errMsg = ""
	limit := c.limit
	c.mu.Unlock()

	res, err := c.remote.List(ctx, p, limit)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--

	if seq <= c.applied {
		c.log.Debug("discarding stale page response", "page", p, "seq", seq, "applied", c.applied)
		return err
	}
	c.applied = seq

	if err != nil {
		c.errMsg = loadFailedPrefix + Reason(err)
		c.log.Error("failed to load page", "page", p, "error", err)
		return err
	}

	c.items = res.Items
	c.total = res.Total
	c.page = res.Page
	c.log.Debug("page loaded", "page", res.Page, "total", res.Total, "items", len(res.Items))

	return nil
}

// NavigateTo загружает страницу p, если она в пределах [1, LastPage]
func (c *Controller) NavigateTo(ctx context.Context, p int) error {
	c.mu.Lock()
	last := LastPage(c.total, c.limit)
	c.mu.Unlock()

	if p < 1 || p > last {
		return nil
	}
	return c.LoadPage(ctx, p)
}

// Reload перезагружает текущую страницу
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	p := c.page
	c.mu.Unlock()

	return c.LoadPage(ctx, p)
}

// AfterDelete загружает страницу, на которой должен оказаться пользователь
// после удаления записи. totalBefore - число записей до удаления.
func (c *Controller) AfterDelete(ctx context.Context, deletedPage, totalBefore, limit int) error {
	return c.LoadPage(ctx, PageAfterDelete(deletedPage, totalBefore, limit))
}

// Delete удаляет запись после подтверждения. Отказ не меняет состояние.
// Возвращает false, если удаление не выполнялось.
func (c *Controller) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := c.confirmer.Confirm(ctx, deletePrompt)
	if err != nil {
		c.log.Warn("confirmation failed, treating as declined", "error_id", id, "error", err)
		return false, nil
	}
	if !ok {
		return false, nil
	}

	c.mu.Lock()
	page, total, limit := c.page, c.total, c.limit
	c.errMsg = ""
	c.mu.Unlock()

	if err := c.remote.Delete(ctx, id); err != nil {
		c.SetError(deleteFailedPrefix + Reason(err))
		c.log.Error("failed to delete record", "error_id", id, "error", err)
		return true, err
	}

	c.log.Info("record deleted", "error_id", id)
	return true, c.AfterDelete(ctx, page, total, limit)
}

func (c *Controller) submitFailed(err error) {
	c.SetError(submitFailedPrefix + Reason(err))
}
