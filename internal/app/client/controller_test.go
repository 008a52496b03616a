package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newController(remote RemoteService, confirmer Confirmer) *Controller {
	if confirmer == nil {
		confirmer = confirmWith(true, nil)
	}
	return NewController(remote, confirmer, 20, slog.Default())
}

func TestController_LoadPage_Success(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 2, 20).Return(&ListResult{Items: records(21, 3), Total: 45, Page: 2, Limit: 20}, nil)

	c := newController(remote, nil)
	require.NoError(t, c.LoadPage(ctx, 2))

	s := c.State()
	assert.Len(t, s.Items, 3)
	assert.Equal(t, 45, s.Total)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, 3, s.LastPage())
	assert.True(t, s.HasPrev())
	assert.True(t, s.HasNext())
	assert.False(t, s.Loading)
	assert.Empty(t, s.ErrMsg)
}

func TestController_LoadPage_ServerPageWins(t *testing.T) {
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 9, 20).Return(&ListResult{Items: records(41, 5), Total: 45, Page: 3, Limit: 20}, nil)

	c := newController(remote, nil)
	require.NoError(t, c.LoadPage(context.Background(), 9))

	assert.Equal(t, 3, c.State().Page)
}

func TestController_LoadPage_Failure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"server message", &ServerError{Status: 500, Message: "db down"}, "Failed to load data: db down"},
		{"bare status", &ServerError{Status: 502}, "Failed to load data: HTTP 502"},
		{"transport", &NetworkError{Op: "GET", Err: errors.New("connection refused")}, "Failed to load data: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			remote := new(MockRemote)
			remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 20), Total: 45, Page: 1, Limit: 20}, nil).Once()
			remote.On("List", mock.Anything, 2, 20).Return(nil, tt.err).Once()

			c := newController(remote, nil)
			require.NoError(t, c.LoadPage(ctx, 1))

			err := c.LoadPage(ctx, 2)
			require.Error(t, err)

			s := c.State()
			assert.Equal(t, tt.expected, s.ErrMsg)
			assert.Equal(t, 1, s.Page)
			assert.Equal(t, 45, s.Total)
			assert.Len(t, s.Items, 20)
			assert.False(t, s.Loading)
		})
	}
}

func TestController_LoadPage_ClearsPreviousError(t *testing.T) {
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 1, 20).Return(nil, &ServerError{Status: 500}).Once()
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 1), Total: 1, Page: 1, Limit: 20}, nil).Once()

	c := newController(remote, nil)
	_ = c.LoadPage(context.Background(), 1)
	require.NotEmpty(t, c.State().ErrMsg)

	require.NoError(t, c.LoadPage(context.Background(), 1))
	assert.Empty(t, c.State().ErrMsg)
}

func TestController_LoadPage_DiscardsStaleResponse(t *testing.T) {
	ctx := context.Background()
	remote := newGatedRemote()
	remote.add(2, &ListResult{Items: records(21, 20), Total: 45, Page: 2, Limit: 20})
	remote.add(3, &ListResult{Items: records(41, 5), Total: 45, Page: 3, Limit: 20})

	c := newController(remote, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.LoadPage(ctx, 2)
	}()

	// дожидаемся, пока первая загрузка получит свой номер
	require.Eventually(t, func() bool { return c.State().Loading }, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.LoadPage(ctx, 3)
	}()

	remote.release(3)
	<-done

	remote.release(2)
	wg.Wait()

	s := c.State()
	assert.Equal(t, 3, s.Page)
	assert.Len(t, s.Items, 5)
	assert.False(t, s.Loading)
}

func TestController_LoadPage_DiscardsStaleFailure(t *testing.T) {
	ctx := context.Background()
	remote := newGatedRemote()
	remote.addError(2, &ServerError{Status: http.StatusInternalServerError, Message: "db down"})
	remote.add(3, &ListResult{Items: records(41, 5), Total: 45, Page: 3, Limit: 20})

	c := newController(remote, nil)

	staleErr := make(chan error, 1)
	go func() {
		staleErr <- c.LoadPage(ctx, 2)
	}()

	require.Eventually(t, func() bool { return c.State().Loading }, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.LoadPage(ctx, 3)
	}()

	remote.release(3)
	<-done

	remote.release(2)
	err := <-staleErr

	// вызывающий узнает об ошибке, но баннер и страница остаются от новой загрузки
	var se *ServerError
	require.ErrorAs(t, err, &se)

	s := c.State()
	assert.Empty(t, s.ErrMsg)
	assert.Equal(t, 3, s.Page)
	assert.Len(t, s.Items, 5)
	assert.False(t, s.Loading)
}

func TestController_NavigateTo(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 20), Total: 45, Page: 1, Limit: 20}, nil).Once()
	remote.On("List", mock.Anything, 3, 20).Return(&ListResult{Items: records(41, 5), Total: 45, Page: 3, Limit: 20}, nil).Once()

	c := newController(remote, nil)
	require.NoError(t, c.LoadPage(ctx, 1))

	require.NoError(t, c.NavigateTo(ctx, 0))
	require.NoError(t, c.NavigateTo(ctx, 4))
	remote.AssertNumberOfCalls(t, "List", 1)

	require.NoError(t, c.NavigateTo(ctx, 3))
	assert.Equal(t, 3, c.State().Page)
	remote.AssertExpectations(t)
}

func TestController_NavigateTo_EmptyStore(t *testing.T) {
	remote := new(MockRemote)
	c := newController(remote, nil)

	require.NoError(t, c.NavigateTo(context.Background(), 2))
	remote.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_AfterDelete(t *testing.T) {
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 20), Total: 20, Page: 1, Limit: 20}, nil)

	c := newController(remote, nil)
	require.NoError(t, c.AfterDelete(context.Background(), 3, 21, 20))

	remote.AssertCalled(t, "List", mock.Anything, 1, 20)
	assert.Equal(t, 1, c.State().Page)
}

func TestController_Delete_Declined(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 2, 20).Return(&ListResult{Items: records(21, 20), Total: 45, Page: 2, Limit: 20}, nil).Once()

	c := newController(remote, confirmWith(false, nil))
	require.NoError(t, c.LoadPage(ctx, 2))
	before := c.State()

	deleted, err := c.Delete(ctx, 21)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, before, c.State())
	remote.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestController_Delete_ConfirmerErrorIsDecline(t *testing.T) {
	remote := new(MockRemote)
	c := newController(remote, confirmWith(true, errors.New("no tty")))

	deleted, err := c.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
	remote.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestController_Delete_LastRecordOnLastPage(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 3, 20).Return(&ListResult{Items: records(41, 1), Total: 41, Page: 3, Limit: 20}, nil).Once()
	remote.On("Delete", mock.Anything, int64(41)).Return(nil).Once()
	remote.On("List", mock.Anything, 2, 20).Return(&ListResult{Items: records(21, 20), Total: 40, Page: 2, Limit: 20}, nil).Once()

	c := newController(remote, nil)
	require.NoError(t, c.LoadPage(ctx, 3))

	deleted, err := c.Delete(ctx, 41)
	require.NoError(t, err)
	assert.True(t, deleted)

	s := c.State()
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, 40, s.Total)
	remote.AssertExpectations(t)
}

func TestController_Delete_Failure(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 3), Total: 3, Page: 1, Limit: 20}, nil).Once()
	remote.On("Delete", mock.Anything, int64(2)).Return(&ServerError{Status: 404, Message: "Not found"}).Once()

	c := newController(remote, nil)
	require.NoError(t, c.LoadPage(ctx, 1))

	deleted, err := c.Delete(ctx, 2)
	require.Error(t, err)
	assert.True(t, deleted)

	s := c.State()
	assert.Equal(t, "Delete failed: Not found", s.ErrMsg)
	assert.Len(t, s.Items, 3)
	assert.Equal(t, 3, s.Total)
	remote.AssertNumberOfCalls(t, "List", 1)
}
