package client

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"
)

// Form черновик записи и режим создания/редактирования
type Form struct {
	ctrl   *Controller
	remote RemoteService
	log    *slog.Logger

	mu        sync.Mutex
	draft     Draft
	editingID *int64
}

func NewForm(ctrl *Controller, remote RemoteService, log *slog.Logger) *Form {
	return &Form{
		ctrl:   ctrl,
		remote: remote,
		log:    log.With(slog.String("component", "form")),
	}
}

// Edit переводит форму в режим редактирования записи
func (f *Form) Edit(rec ErrorRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := rec.RecordID()
	f.editingID = &id
	f.draft = DraftFromRecord(rec)
}

// Cancel возвращает форму в режим создания с пустым черновиком
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reset()
}

func (f *Form) reset() {
	f.draft = Draft{}
	f.editingID = nil
}

// SetField меняет одно поле черновика по имени на проводе
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.draft.set(name, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// EditingID ID редактируемой записи, ok=false в режиме создания
func (f *Form) EditingID() (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.editingID == nil {
		return 0, false
	}
	return *f.editingID, true
}

// Missing пустые обязательные поля черновика
func (f *Form) Missing() []string {
	return f.Draft().Missing()
}

// Submit создает или обновляет запись. При успехе форма сбрасывается
// и текущая страница перезагружается, при ошибке черновик сохраняется.
func (f *Form) Submit(ctx context.Context) error {
	f.ctrl.ClearError()

	f.mu.Lock()
	draft := f.draft
	var editingID *int64
	if f.editingID != nil {
		id := *f.editingID
		editingID = &id
	}
	f.mu.Unlock()

	var err error
	if editingID != nil {
		err = f.remote.Update(ctx, *editingID, draft)
	} else {
		var id int64
		id, err = f.remote.Create(ctx, draft)
		if err == nil {
			f.log.Info("record created", "error_id", id)
		}
	}

	if err != nil {
		f.ctrl.submitFailed(err)
		f.log.Error("submit failed", "editing", editingID != nil, "error", err)
		return err
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	return f.ctrl.Reload(ctx)
}
