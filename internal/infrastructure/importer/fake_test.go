package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	rows := Fake(25, 42, now)
	require.Len(t, rows, 25)

	for _, in := range rows {
		rec, err := in.ToRecord()
		require.NoError(t, err)
		assert.False(t, rec.Date.After(now))
		assert.GreaterOrEqual(t, rec.Count, int64(0))
		assert.Contains(t, fakeCategories, rec.Category)
	}

	assert.Equal(t, rows, Fake(25, 42, now))
}
