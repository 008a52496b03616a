package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"nceerrors/internal/app/client/config"
)

// App сессия клиента: HTTP клиент, контроллер страницы и форма
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *HTTPClient
	Controller *Controller
	Form       *Form
}

func New(cfg *config.Config, log *slog.Logger, confirmer Confirmer) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return newApp(cfg, log, httpCl, confirmer), nil
}

func newApp(cfg *config.Config, log *slog.Logger, remote RemoteService, confirmer Confirmer) *App {
	ctrl := NewController(remote, confirmer, cfg.PageLimit, log)

	app := &App{
		config:     cfg,
		log:        log,
		Controller: ctrl,
		Form:       NewForm(ctrl, remote, log),
	}
	if hc, ok := remote.(*HTTPClient); ok {
		app.httpClient = hc
	}
	return app
}

func (a *App) Config() *config.Config {
	return a.config
}

// Start загружает первую страницу
func (a *App) Start(ctx context.Context) error {
	return a.Controller.LoadPage(ctx, 1)
}

// EditByID переводит форму в редактирование записи id. Запись берется
// с текущей страницы, иначе запрашивается у сервера.
func (a *App) EditByID(ctx context.Context, id int64) error {
	for _, rec := range a.Controller.State().Items {
		if rec.RecordID() == id {
			a.Form.Edit(rec)
			return nil
		}
	}

	rec, err := a.Controller.remote.Get(ctx, id)
	if err != nil {
		a.Controller.SetError(fmt.Sprintf("Failed to load record %d: %s", id, Reason(err)))
		return err
	}

	a.Form.Edit(*rec)
	return nil
}

// HealthCheck проверяет доступность сервера
func (a *App) HealthCheck(ctx context.Context) (*Health, error) {
	if a.httpClient == nil {
		return nil, fmt.Errorf("health check is not supported by this remote")
	}
	return a.httpClient.HealthCheck(ctx)
}
