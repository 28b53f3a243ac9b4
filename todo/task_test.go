package todo

import (
	"testing"

	"github.com/corridorhq/corridor-go/runtime"
)

func TestTask_NestedDefaultsComposeAddressesRootToLeaf(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	tasks := NewTaskCollection(qc, runtime.NewPath("me", nil).Child("todo").Child("tasks"))

	task := tasks.ByID("t1")
	linked := task.LinkedResources()
	if got := linked.Path().Address(); got != "me/todo/tasks/t1/linkedResources" {
		t.Fatalf("nested address: %q", got)
	}
	if qc.Len() != 0 {
		t.Fatal("navigation through defaults must not queue operations")
	}
}

func TestTask_LinkedResourcesMemoized(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	task := NewTask(qc, runtime.NewPath("me", nil).Child("todo").Child("tasks").Child("t1"))

	first := task.LinkedResources()
	if first == nil || first != task.LinkedResources() {
		t.Fatal("linkedResources must return the identical bound instance")
	}

	first.Add(runtime.PropertySet{"applicationName": "Mailer", "displayName": "origin mail"})
	ops := qc.Pending()
	if len(ops) != 1 || ops[0].Kind != runtime.OpCreate {
		t.Fatalf("expected one queued create, got %+v", ops)
	}
	if got := ops[0].Address(); got != "me/todo/tasks/t1/linkedResources" {
		t.Fatalf("queued address: %q", got)
	}
}

func TestTask_RecurrenceDefaultAndDecode(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	task := NewTask(qc, runtime.NewPath("me", nil).Child("todo").Child("tasks").Child("t1"))

	if got := task.Recurrence(); got.Pattern.Type != "" || got.Range.Type != "" {
		t.Fatalf("unfetched recurrence should be empty: %+v", got)
	}
	task.SetProperty("recurrence", map[string]any{
		"pattern": map[string]any{"type": "weekly", "interval": 2},
		"range":   map[string]any{"type": "numbered", "numberOfOccurrences": 10},
	})
	rec := task.Recurrence()
	if rec.Pattern.Type != "weekly" || rec.Pattern.Interval != 2 {
		t.Fatalf("pattern not decoded: %+v", rec.Pattern)
	}
	if rec.Range.NumberOfOccurrences != 10 {
		t.Fatalf("range not decoded: %+v", rec.Range)
	}
}

func TestLinkedResource_Getters(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	col := NewLinkedResourceCollection(qc, runtime.NewPath("me", nil).Child("todo").Child("tasks").Child("t1").Child("linkedResources"))

	r := col.Append(runtime.PropertySet{
		"applicationName": "Mailer",
		"displayName":     "origin mail",
		"externalId":      "msg-42",
		"webUrl":          "https://mail.example/msg-42",
	}).(*LinkedResource)
	if r.ApplicationName() != "Mailer" || r.ExternalID() != "msg-42" {
		t.Fatalf("getters mismatch: %q %q", r.ApplicationName(), r.ExternalID())
	}
}
