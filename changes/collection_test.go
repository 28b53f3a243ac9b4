package changes

import (
	"fmt"
	"testing"

	"github.com/corridorhq/corridor-go/runtime"
)

func newTestCollection() *Collection {
	qc := runtime.NewQueryContext()
	return NewCollection(qc, runtime.NewPath("changeLog", nil))
}

func TestResolve_ListBeatsWebOnlyRule(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	item := col.Append(runtime.PropertySet{"ListId": "l1", "WebId": "w1"})
	lc, ok := item.(*ListChange)
	if !ok {
		t.Fatalf("expected *ListChange, got %T", item)
	}
	if lc.ListID() != "l1" || lc.WebID() != "w1" {
		t.Fatalf("raw record not backfilled: %v %v", lc.ListID(), lc.WebID())
	}
}

func TestResolve_ItemBeatsWebOnlyRule(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	item := col.Append(runtime.PropertySet{"ItemId": "i1", "ListId": "l1"})
	ic, ok := item.(*ItemChange)
	if !ok {
		t.Fatalf("expected *ItemChange, got %T", item)
	}
	if ic.ItemID() != "i1" || ic.ListID() != "l1" {
		t.Fatalf("raw record not backfilled: %v %v", ic.ItemID(), ic.ListID())
	}
}

func TestResolve_RuleGrid(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	cases := []struct {
		name string
		raw  runtime.PropertySet
		want string
	}{
		{"web only", runtime.PropertySet{"WebId": "w"}, "*changes.WebChange"},
		{"user", runtime.PropertySet{"UserId": "u"}, "*changes.UserChange"},
		{"group", runtime.PropertySet{"GroupId": "g"}, "*changes.GroupChange"},
		{"content type", runtime.PropertySet{"ContentTypeId": "ct"}, "*changes.ContentTypeChange"},
		{"alert", runtime.PropertySet{"AlertId": "a"}, "*changes.AlertChange"},
		{"field", runtime.PropertySet{"FieldId": "f"}, "*changes.FieldChange"},
	}
	for _, c := range cases {
		item := col.Append(c.raw)
		if got := fmt.Sprintf("%T", item); got != c.want {
			t.Fatalf("%s: got %s want %s", c.name, got, c.want)
		}
	}
}

func TestResolve_NoMatchFallsBackToBaseChange(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	item := col.Append(runtime.PropertySet{"Foo": 1})
	if _, ok := item.(*Change); !ok {
		t.Fatalf("expected base *Change, got %T", item)
	}
	if col.Len() != 1 {
		t.Fatalf("fallback record should still materialize, len=%d", col.Len())
	}
}

func TestChange_TokenDefault(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	item := col.Append(runtime.PropertySet{"Foo": 1}).(*Change)
	if tok := item.ChangeToken(); tok != (Token{}) {
		t.Fatalf("unfetched token should be the empty value, got %+v", tok)
	}

	withToken := col.Append(runtime.PropertySet{
		"Foo":         1,
		"ChangeToken": map[string]any{"stringValue": "1;3;abc"},
	}).(*Change)
	if got := withToken.ChangeToken().StringValue; got != "1;3;abc" {
		t.Fatalf("token not decoded: %q", got)
	}
}

func TestCollection_ItemsShareLogPath(t *testing.T) {
	t.Parallel()
	col := newTestCollection()
	item := col.Append(runtime.PropertySet{"WebId": "w"})
	if got := item.Path().Address(); got != "changeLog" {
		t.Fatalf("item path: %q", got)
	}
}
