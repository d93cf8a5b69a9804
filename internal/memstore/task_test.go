package memstore

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/rpggio/flick/internal/domain/task"
	"github.com/rpggio/flick/internal/events"
	"github.com/stretchr/testify/require"
)

func newTask(id, projectID string) task.Task {
	return task.Task{
		ID:        id,
		Title:     "task " + id,
		Date:      time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		Assignee:  "张三",
		Status:    task.StatusPending,
		ProjectID: projectID,
	}
}

func taskIDs(tasks []task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskStore_ListForProjectScenario(t *testing.T) {
	store := NewTaskStore()
	t1 := newTask("t1", "p1")
	t2 := newTask("t2", "p2")
	t3 := newTask("t3", "p1")

	store.Add(t1)
	store.Add(t2)
	store.Add(t3)

	require.Equal(t, []task.Task{t1, t3}, store.ListForProject("p1"))
	require.Equal(t, []task.Task{t2}, store.ListForProject("p2"))
	require.Empty(t, store.ListForProject("p3"))
}

func TestTaskStore_ListForProjectIsStableFilter(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	projects := []string{"p1", "p2", "p3"}

	for round := 0; round < 20; round++ {
		store := NewTaskStore()
		want := map[string][]string{}
		for i := 0; i < 30; i++ {
			pid := projects[rng.IntN(len(projects))]
			id := fmt.Sprintf("r%d-t%d", round, i)
			store.Add(newTask(id, pid))
			want[pid] = append(want[pid], id)
		}

		for _, pid := range projects {
			got := store.ListForProject(pid)
			for _, tk := range got {
				require.Equal(t, pid, tk.ProjectID)
			}
			require.Equal(t, len(want[pid]), len(got))
			if len(got) > 0 {
				require.Equal(t, want[pid], taskIDs(got))
			}
		}
	}
}

func TestTaskStore_UpdateInPlace(t *testing.T) {
	store := NewTaskStore()
	store.Add(newTask("t1", "p1"))
	store.Add(newTask("t2", "p1"))

	updated := newTask("t1", "p1")
	updated.Status = task.StatusCompleted
	updated.Title = "前期筹备"
	require.True(t, store.Update(updated))

	require.Equal(t, []string{"t1", "t2"}, taskIDs(store.List()))
	got, ok := store.Get("t1")
	require.True(t, ok)
	require.Equal(t, updated, got)
}

func TestTaskStore_UnknownIDsAreNoops(t *testing.T) {
	store := NewTaskStore()
	store.Add(newTask("t1", "p1"))
	before := store.List()

	require.False(t, store.Update(newTask("missing", "p1")))
	store.Delete("missing")
	require.Equal(t, before, store.List())
}

func TestTaskStore_DeleteNeverLeavesID(t *testing.T) {
	store := NewTaskStore()
	store.Add(newTask("t1", "p1"))
	store.Add(newTask("t2", "p1"))

	store.Delete("t1")
	for _, tk := range store.List() {
		require.NotEqual(t, "t1", tk.ID)
	}
	require.Equal(t, []string{"t2"}, taskIDs(store.ListForProject("p1")))
}

func TestTaskStore_ProjectDeleteDoesNotCascade(t *testing.T) {
	projects := NewProjectStore()
	tasks := NewTaskStore()

	projects.Add(newProject("p1", "Alpha"))
	tasks.Add(newTask("t1", "p1"))
	tasks.Add(newTask("t2", "p1"))

	projects.Delete("p1")

	require.Empty(t, projects.List())
	require.Equal(t, []string{"t1", "t2"}, taskIDs(tasks.ListForProject("p1")))
}

func TestTaskStore_Notifications(t *testing.T) {
	store := NewTaskStore()

	var got []events.Event
	store.Subscribe(func(e events.Event) { got = append(got, e) })

	store.Add(newTask("t1", "p1"))
	store.Update(newTask("t1", "p1"))
	store.Update(newTask("missing", "p1"))
	store.Delete("t1")
	store.Delete("t1")

	require.Len(t, got, 4)
	require.Equal(t, events.TaskAdded, got[0].Kind)
	require.Equal(t, events.TaskUpdated, got[1].Kind)
	require.Equal(t, events.TaskDeleted, got[2].Kind)
	require.Equal(t, "p1", got[2].ProjectID)
	require.Equal(t, events.TaskDeleted, got[3].Kind)
	require.Empty(t, got[3].ProjectID)
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i].Sequence, got[i-1].Sequence)
	}
}

func TestStores_NotifyOnlyTheirOwnListeners(t *testing.T) {
	projects := NewProjectStore()
	tasks := NewTaskStore()

	var projectKinds, taskKinds []events.Kind
	projects.Subscribe(func(e events.Event) { projectKinds = append(projectKinds, e.Kind) })
	tasks.Subscribe(func(e events.Event) { taskKinds = append(taskKinds, e.Kind) })

	projects.Add(newProject("p1", "Alpha"))
	tasks.Add(newTask("t1", "p1"))
	tasks.Delete("nope")
	projects.Delete("p1")

	require.Equal(t, []events.Kind{events.ProjectAdded, events.ProjectDeleted}, projectKinds)
	require.Equal(t, []events.Kind{events.TaskAdded, events.TaskDeleted}, taskKinds)
}

func TestTaskStore_Toggle(t *testing.T) {
	store := NewTaskStore()
	store.Add(newTask("t1", "p1"))

	var got []events.Event
	store.Subscribe(func(e events.Event) { got = append(got, e) })

	toggled, ok := store.Toggle("t1")
	require.True(t, ok)
	require.Equal(t, task.StatusCompleted, toggled.Status)
	stored, _ := store.Get("t1")
	require.Equal(t, task.StatusCompleted, stored.Status)

	_, ok = store.Toggle("missing")
	require.False(t, ok)

	require.Len(t, got, 1)
	require.Equal(t, events.TaskUpdated, got[0].Kind)
}

func TestTaskStore_ConcurrentTogglesAreNotLost(t *testing.T) {
	store := NewTaskStore()
	store.Add(newTask("t1", "p1"))

	const n = 101
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Toggle("t1")
		}()
	}
	wg.Wait()

	stored, _ := store.Get("t1")
	require.Equal(t, task.StatusCompleted, stored.Status, "an odd number of flips ends completed")
}

func TestTaskStore_ConcurrentWritersNotifyInOrder(t *testing.T) {
	store := NewTaskStore()

	var (
		mu   sync.Mutex
		seqs []uint64
		lens []int
	)
	store.Subscribe(func(e events.Event) {
		n := len(store.List())
		mu.Lock()
		seqs = append(seqs, e.Sequence)
		lens = append(lens, n)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Add(newTask(fmt.Sprintf("t%d", i), "p1"))
		}(i)
	}
	wg.Wait()

	require.Len(t, store.List(), 50)
	require.Len(t, seqs, 50)
	for i := range seqs {
		require.Equal(t, uint64(i+1), seqs[i])
		require.Equal(t, i+1, lens[i])
	}
}
