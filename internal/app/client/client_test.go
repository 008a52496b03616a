package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/client/config"
)

func TestApp_EditByID(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 3), Total: 3, Page: 1, Limit: 20}, nil).Once()
	remote.On("Get", mock.Anything, int64(99)).Return(&ErrorRecord{ID: id(99), Category: "Billing"}, nil).Once()
	remote.On("Get", mock.Anything, int64(100)).Return(nil, &ServerError{Status: 404, Message: "Not found"}).Once()

	app := newApp(&config.Config{PageLimit: 20}, slog.Default(), remote, confirmWith(true, nil))
	require.NoError(t, app.Start(ctx))

	// запись с текущей страницы не запрашивается повторно
	require.NoError(t, app.EditByID(ctx, 2))
	editing, _ := app.Form.EditingID()
	assert.Equal(t, int64(2), editing)

	require.NoError(t, app.EditByID(ctx, 99))
	assert.Equal(t, "Billing", app.Form.Draft().Category)

	require.Error(t, app.EditByID(ctx, 100))
	assert.Contains(t, app.Controller.State().ErrMsg, "Not found")

	remote.AssertExpectations(t)
}

func TestApp_HealthCheckWithoutHTTP(t *testing.T) {
	app := newApp(&config.Config{PageLimit: 20}, slog.Default(), new(MockRemote), confirmWith(true, nil))

	_, err := app.HealthCheck(context.Background())
	assert.Error(t, err)
}
