package app

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rpggio/flick/internal/config"
	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
	"github.com/rpggio/flick/internal/events"
	"github.com/stretchr/testify/require"
)

func TestNew_Seeded(t *testing.T) {
	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)

	a, err := New(context.Background(), config.Default(), WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	projects := a.Projects.List()
	require.Len(t, projects, 2)
	require.Equal(t, "蒙牛 TVC", projects[0].Name)
	require.Equal(t, project.ColorRed, projects[1].Color)
	require.Len(t, a.Tasks.List(), 6)

	progress, err := a.ProjectService.Progress(context.Background(), projects[1].ID)
	require.NoError(t, err)
	require.Equal(t, project.Progress{ProjectID: projects[1].ID, Completed: 1, Total: 3, Percent: 33}, progress)
}

func TestNew_Unseeded(t *testing.T) {
	cfg := config.Default()
	cfg.Seed.Enabled = false

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.Empty(t, a.Projects.List())
	require.Empty(t, a.Tasks.List())
}

func TestNew_LogsChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := config.Default()
	cfg.Seed.Enabled = false
	a, err := New(context.Background(), cfg, WithLogger(logger))
	require.NoError(t, err)

	_, err = a.ProjectService.Create(context.Background(), project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "kind=project.added")

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	buf.Reset()
	_, err = a.ProjectService.Create(context.Background(), project.CreateRequest{Name: "Beta"})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "store changed")
}

func TestNew_StoreListenersAreSeparate(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Seed.Enabled = false

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	var projectKinds, taskKinds, feedKinds []events.Kind
	a.Projects.Subscribe(func(e events.Event) { projectKinds = append(projectKinds, e.Kind) })
	a.Tasks.Subscribe(func(e events.Event) { taskKinds = append(taskKinds, e.Kind) })
	a.Broker.Subscribe(func(e events.Event) { feedKinds = append(feedKinds, e.Kind) })

	p, err := a.ProjectService.Create(ctx, project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)
	_, err = a.TaskService.Create(ctx, task.CreateRequest{ProjectID: p.ID, Title: "前期筹备"})
	require.NoError(t, err)
	a.Tasks.Delete("nope")

	require.Equal(t, []events.Kind{events.ProjectAdded}, projectKinds)
	require.Equal(t, []events.Kind{events.TaskAdded, events.TaskDeleted}, taskKinds)
	require.Equal(t, []events.Kind{events.ProjectAdded, events.TaskAdded, events.TaskDeleted}, feedKinds)
}

func TestNew_FeedSequenceAcrossStores(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Seed.Enabled = false

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	var (
		mu   sync.Mutex
		seqs []uint64
	)
	a.Broker.Subscribe(func(e events.Event) {
		mu.Lock()
		seqs = append(seqs, e.Sequence)
		mu.Unlock()
	})

	const n = 500
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = a.ProjectService.Create(ctx, project.CreateRequest{Name: "Alpha"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = a.TaskService.Create(ctx, task.CreateRequest{ProjectID: "p1", Title: "场地勘察"})
		}
	}()
	wg.Wait()

	require.Len(t, seqs, 2*n)
	for i := range seqs {
		require.Equal(t, uint64(i+1), seqs[i])
	}
}

func TestHandler_Routes(t *testing.T) {
	a, err := New(context.Background(), config.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	server := httptest.NewServer(a.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/projects")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
