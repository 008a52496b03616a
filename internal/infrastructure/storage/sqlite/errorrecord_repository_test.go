package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"nceerrors/internal/domain/errorrecord"
)

func newTestRepo(t *testing.T) errorrecord.Repository {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "errors.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st.Records()
}

func sampleRecord(n int) *errorrecord.Record {
	return &errorrecord.Record{
		Description:          "Sync failure",
		Category:             "Integration",
		CustomerOverviewType: "Retail",
		Date:                 time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC),
		Count:                int64(n),
	}
}

func TestErrorRecordRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Create(ctx, sampleRecord(15))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Integration", got.Category)
	assert.Equal(t, "2024-03-15", got.Date.Format(errorrecord.DateLayout))
	assert.Equal(t, int64(15), got.Count)

	upd := sampleRecord(16)
	upd.ID = id
	upd.Category = "Billing"
	require.NoError(t, repo.Update(ctx, upd))

	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Billing", got.Category)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, errorrecord.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), errorrecord.ErrNotFound)

	upd.ID = 9999
	assert.ErrorIs(t, repo.Update(ctx, upd), errorrecord.ErrNotFound)
}

func TestErrorRecordRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, sampleRecord(i))
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	page, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].Count)
	assert.Equal(t, int64(4), page[1].Count)

	page, err = repo.List(ctx, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
