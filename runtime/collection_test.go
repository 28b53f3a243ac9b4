package runtime

import (
	"strconv"
	"testing"
)

type redItem struct{ *Entity }

type blueItem struct{ *Entity }

func newRedItem(qc *QueryContext, path *ResourcePath) Item {
	return &redItem{Entity: NewEntity(qc, path)}
}

func newBlueItem(qc *QueryContext, path *ResourcePath) Item {
	return &blueItem{Entity: NewEntity(qc, path)}
}

func colorResolver(props PropertySet) (ItemFactory, bool) {
	switch {
	case props.Has("RedId"):
		return newRedItem, true
	case props.Has("BlueId"):
		return newBlueItem, true
	default:
		return nil, false
	}
}

func TestCollection_TypeResolvedBeforeMaterialization(t *testing.T) {
	t.Parallel()
	qc := NewQueryContext()
	col := NewCollection(qc, NewPath("records", nil), plainItem)
	col.SetTypeResolver(colorResolver)

	red := col.Append(PropertySet{"RedId": "r1"})
	if _, ok := red.(*redItem); !ok {
		t.Fatalf("expected red item, got %T", red)
	}
	blue := col.Append(PropertySet{"BlueId": "b1"})
	if _, ok := blue.(*blueItem); !ok {
		t.Fatalf("expected blue item, got %T", blue)
	}
}

func TestCollection_NoRuleFallsBackToBaseType(t *testing.T) {
	t.Parallel()
	qc := NewQueryContext()
	col := NewCollection(qc, NewPath("records", nil), plainItem)
	col.SetTypeResolver(colorResolver)

	item := col.Append(PropertySet{"Foo": 1})
	if _, ok := item.(*Entity); !ok {
		t.Fatalf("expected base item type, got %T", item)
	}
	if col.Len() != 1 {
		t.Fatalf("item should still be materialized, len=%d", col.Len())
	}
}

func TestCollection_ItemsSharePathAndProperties(t *testing.T) {
	t.Parallel()
	qc := NewQueryContext()
	col := NewCollection(qc, NewPath("webs", nil).Child("w1").Child("records"), plainItem)

	item := col.Append(PropertySet{"Name": "first"})
	if got := item.Path().Address(); got != "webs/w1/records" {
		t.Fatalf("item path: got %q", got)
	}
	ent := item.(*Entity)
	if ent.String("Name") != "first" {
		t.Fatalf("raw record should backfill the item: %v", ent.Properties())
	}
}

func TestCollection_SetPropertyMapsRecordsAndCursor(t *testing.T) {
	t.Parallel()
	qc := NewQueryContext()
	col := NewCollection(qc, NewPath("records", nil), plainItem)

	for i := 0; i < 3; i++ {
		col.SetProperty(strconv.Itoa(i), map[string]any{"n": i})
	}
	col.SetProperty(NextKey, "records?$skiptoken=3")

	if col.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", col.Len())
	}
	if col.NextLink() != "records?$skiptoken=3" {
		t.Fatalf("next link: got %q", col.NextLink())
	}
	// Non-record values under positional keys are ignored, never an error.
	col.SetProperty("9", "not a record")
	if col.Len() != 3 {
		t.Fatalf("scalar record should be ignored, len=%d", col.Len())
	}
}

func TestCollection_AddEnqueuesCreateAtOwnAddress(t *testing.T) {
	t.Parallel()
	qc := NewQueryContext()
	col := NewCollection(qc, NewPath("groups", nil).Child("g1").Child("members"), plainItem)

	item := col.Add(PropertySet{"displayName": "m"})
	if item == nil {
		t.Fatal("Add must return the local stand-in")
	}
	ops := qc.Pending()
	if len(ops) != 1 {
		t.Fatalf("expected exactly one queued operation, got %d", len(ops))
	}
	op := ops[0]
	if op.Kind != OpCreate {
		t.Fatalf("expected create, got %v", op.Kind)
	}
	if got := op.Address(); got != "groups/g1/members" {
		t.Fatalf("operation address: got %q", got)
	}
	if op.Return != PropertySink(item) {
		t.Fatal("create must backfill the stand-in item")
	}
}
