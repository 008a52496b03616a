package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newForm(remote *MockRemote) (*Form, *Controller) {
	ctrl := newController(remote, nil)
	return NewForm(ctrl, remote, slog.Default()), ctrl
}

func filledDraft() Draft {
	return Draft{
		Description:          "Sync failure",
		Category:             "Integration",
		CustomerOverviewType: "Retail",
		Date:                 "2024-03-15",
		Count:                "12",
	}
}

func TestForm_Edit(t *testing.T) {
	f, _ := newForm(new(MockRemote))

	f.Edit(ErrorRecord{
		ID:                   id(7),
		Description:          "Timeout",
		Category:             "Network",
		CustomerOverviewType: "Enterprise",
		Date:                 "2024-03-15T00:00:00Z",
		Count:                count(4),
	})

	editing, ok := f.EditingID()
	require.True(t, ok)
	assert.Equal(t, int64(7), editing)

	d := f.Draft()
	assert.Equal(t, "2024-03-15", d.Date)
	assert.Equal(t, "4", d.Count)
	assert.Equal(t, "Network", d.Category)
}

func TestForm_Edit_UnsetValues(t *testing.T) {
	f, _ := newForm(new(MockRemote))

	f.Edit(ErrorRecord{ID: id(3), Category: "Billing"})

	d := f.Draft()
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Count)
	assert.ElementsMatch(t, []string{FieldDescription, FieldCustomerOverviewType, FieldDate, FieldCount}, f.Missing())
}

func TestForm_Cancel(t *testing.T) {
	remote := new(MockRemote)
	f, _ := newForm(remote)

	f.Edit(ErrorRecord{ID: id(7), Category: "Network"})
	f.Cancel()

	_, ok := f.EditingID()
	assert.False(t, ok)
	assert.Equal(t, Draft{}, f.Draft())
	assert.Empty(t, remote.Calls)
}

func TestForm_SetField(t *testing.T) {
	f, _ := newForm(new(MockRemote))

	require.NoError(t, f.SetField(FieldCategory, "Billing"))
	require.NoError(t, f.SetField(FieldCount, "-1"))

	err := f.SetField("severity", "high")
	assert.ErrorIs(t, err, ErrUnknownField)

	d := f.Draft()
	assert.Equal(t, "Billing", d.Category)
	assert.Equal(t, "-1", d.Count)
}

func TestForm_Submit_Create(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("Create", mock.Anything, filledDraft()).Return(int64(46), nil).Once()
	remote.On("List", mock.Anything, 1, 20).Return(&ListResult{Items: records(1, 20), Total: 46, Page: 1, Limit: 20}, nil).Once()

	f, ctrl := newForm(remote)
	for _, name := range DraftFields {
		v, _ := filledDraft().Get(name)
		require.NoError(t, f.SetField(name, v))
	}

	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, Draft{}, f.Draft())
	assert.Equal(t, 46, ctrl.State().Total)
	remote.AssertExpectations(t)
}

func TestForm_Submit_Update(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("List", mock.Anything, 2, 20).Return(&ListResult{Items: records(21, 20), Total: 45, Page: 2, Limit: 20}, nil).Twice()
	remote.On("Update", mock.Anything, int64(25), mock.MatchedBy(func(d Draft) bool {
		return d.Category == "Billing"
	})).Return(nil).Once()

	f, ctrl := newForm(remote)
	require.NoError(t, ctrl.LoadPage(ctx, 2))

	f.Edit(records(25, 1)[0])
	require.NoError(t, f.SetField(FieldCategory, "Billing"))
	require.NoError(t, f.Submit(ctx))

	_, ok := f.EditingID()
	assert.False(t, ok)
	assert.Equal(t, 2, ctrl.State().Page)
	remote.AssertExpectations(t)
}

func TestForm_Submit_Failure(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), &ServerError{Status: 400, Message: "category required"}).Once()

	f, ctrl := newForm(remote)
	require.NoError(t, f.SetField(FieldDescription, "Sync failure"))
	draft := f.Draft()

	err := f.Submit(ctx)
	require.Error(t, err)

	assert.Equal(t, "Submit failed: category required", ctrl.State().ErrMsg)
	assert.Equal(t, draft, f.Draft())
	_, ok := f.EditingID()
	assert.False(t, ok)
	remote.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestForm_Submit_FailureKeepsEditing(t *testing.T) {
	remote := new(MockRemote)
	remote.On("Update", mock.Anything, int64(9), mock.Anything).Return(&ServerError{Status: 404, Message: "Not found"}).Once()

	f, ctrl := newForm(remote)
	f.Edit(records(9, 1)[0])

	require.Error(t, f.Submit(context.Background()))

	editing, ok := f.EditingID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), editing)
	assert.Equal(t, "Submit failed: Not found", ctrl.State().ErrMsg)
}
