// Package todo models tasks and the partner-application resources linked to
// them.
package todo

import (
	"time"

	"github.com/corridorhq/corridor-go/calendar"
	"github.com/corridorhq/corridor-go/runtime"
)

// Task is a single to-do task.
type Task struct {
	*runtime.Entity
}

// NewTask constructs a task bound to qc at path.
func NewTask(qc *runtime.QueryContext, path *runtime.ResourcePath) *Task {
	t := &Task{Entity: runtime.NewEntity(qc, path)}
	t.BindDefaults(t.defaultFor)
	return t
}

func (t *Task) defaultFor(name string) (any, bool, bool) {
	switch name {
	case "linkedResources":
		return NewLinkedResourceCollection(t.Context(), t.Path().Child(name)), true, true
	case "recurrence":
		return calendar.Recurrence{}, false, true
	default:
		return nil, false, false
	}
}

// Title returns a brief description of the task.
func (t *Task) Title() string { return t.String("title") }

// Status is notStarted, inProgress, completed, waitingOnOthers or deferred.
func (t *Task) Status() string { return t.String("status") }

// Importance is low, normal or high.
func (t *Task) Importance() string { return t.String("importance") }

// IsReminderOn reports whether an alert is set for the task.
func (t *Task) IsReminderOn() bool { return t.Bool("isReminderOn") }

// CreatedDateTime reports when the task was created.
func (t *Task) CreatedDateTime() time.Time { return t.Time("createdDateTime") }

// Recurrence returns the task's recurrence, the empty value when not
// recurring or not yet fetched.
func (t *Task) Recurrence() calendar.Recurrence {
	if v, ok := t.Property("recurrence", nil).(calendar.Recurrence); ok {
		return v
	}
	var out calendar.Recurrence
	_ = t.Decode("recurrence", &out)
	return out
}

// LinkedResources returns the partner-application resources attached to the
// task. Bound under the task's path and memoized.
func (t *Task) LinkedResources() *LinkedResourceCollection {
	col, _ := t.Property("linkedResources", nil).(*LinkedResourceCollection)
	return col
}

// TaskCollection is a task list's set of tasks.
type TaskCollection struct {
	*runtime.Collection
}

// NewTaskCollection constructs the collection at path.
func NewTaskCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *TaskCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewTask(qc, p)
	})
	return &TaskCollection{Collection: col}
}

// ByID navigates to a single task without network access.
func (c *TaskCollection) ByID(id string) *Task {
	return NewTask(c.Context(), c.Path().Child(id))
}

// Add enqueues creation of a task and returns the local stand-in.
func (c *TaskCollection) Add(props runtime.PropertySet) *Task {
	return c.Collection.Add(props).(*Task)
}
