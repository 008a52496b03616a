package record

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"nceerrors/cmd/client/cmd/prompt"
	"nceerrors/cmd/client/cmd/types"
	"nceerrors/internal/app/client"
	clientcfg "nceerrors/internal/app/client/config"
	"nceerrors/internal/app/server/api"
	servercfg "nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/storage/sqlite"
)

func newEnv(t *testing.T, baseURL string, interactive bool) (*types.Env, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	term := prompt.NewWith(strings.NewReader(""), &out, interactive)

	app, err := client.New(&clientcfg.Config{
		APIBase:        baseURL,
		PageLimit:      20,
		RequestTimeout: 5 * time.Second,
	}, slog.Default(), term)
	require.NoError(t, err)

	return &types.Env{App: app, Term: term, Out: &out}, &out
}

func runDelete(t *testing.T, env *types.Env, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		deleteYes = false
		deletePage = 1
	})

	DeleteCmd.SetArgs(args)
	DeleteCmd.SetOut(io.Discard)
	DeleteCmd.SetErr(io.Discard)
	return DeleteCmd.ExecuteContext(types.WithEnv(context.Background(), env))
}

func TestDeleteCmd_NonInteractiveWithoutYes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	env, out := newEnv(t, srv.URL, false)

	err := runDelete(t, env, "5")
	require.ErrorIs(t, err, prompt.ErrNotInteractive)
	assert.Zero(t, hits.Load(), "no request may be sent")
	assert.NotContains(t, out.String(), "Deletion cancelled")
}

func TestDeleteCmd_NonInteractiveWithYes(t *testing.T) {
	st, err := sqlite.New(filepath.Join(t.TempDir(), "delete.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	service := errorrecord.NewService(st.Records(), nil, slog.Default())
	id, err := service.Create(context.Background(), errorrecord.Input{
		Description:          "Sync failure",
		Category:             "Integration",
		CustomerOverviewType: "Retail",
		Date:                 "2024-03-15",
		Count:                "3",
	})
	require.NoError(t, err)

	scfg := &servercfg.Config{}
	scfg.Pagination.DefaultLimit = 20
	scfg.Pagination.MaxLimit = 100
	srv := httptest.NewServer(api.New(service, scfg, slog.Default()))
	t.Cleanup(srv.Close)

	env, out := newEnv(t, srv.URL, false)

	require.NoError(t, runDelete(t, env, strconv.FormatInt(id, 10), "--yes"))

	_, err = service.Find(context.Background(), id)
	assert.ErrorIs(t, err, errorrecord.ErrNotFound)
	assert.Contains(t, out.String(), "No records")
	assert.Equal(t, 0, env.App.Controller.State().Total)
}
