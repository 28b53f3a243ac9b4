package runtime

import "testing"

func TestResourcePath_RootAddress(t *testing.T) {
	t.Parallel()
	root := NewPath("servicePrincipals", nil)
	if got := root.Address(); got != "servicePrincipals" {
		t.Fatalf("root address: got %q", got)
	}
	if root.Parent() != nil {
		t.Fatal("root parent should be nil")
	}
}

func TestResourcePath_NestedAddress(t *testing.T) {
	t.Parallel()
	leaf := NewPath("a", nil).Child("b").Child("c")
	if got := leaf.Address(); got != "a/b/c" {
		t.Fatalf("nested address: got %q", got)
	}
	if got := leaf.Segment(); got != "c" {
		t.Fatalf("segment: got %q", got)
	}
}

func TestResourcePath_AddressesInterchangeable(t *testing.T) {
	t.Parallel()
	// Two distinct path objects with the same segments resolve identically;
	// nothing depends on object identity.
	a := NewPath("x", nil).Child("y")
	b := NewPath("y", NewPath("x", nil))
	if a.Address() != b.Address() {
		t.Fatalf("addresses differ: %q vs %q", a.Address(), b.Address())
	}
}

func TestResourcePath_NilAddress(t *testing.T) {
	t.Parallel()
	var p *ResourcePath
	if got := p.Address(); got != "" {
		t.Fatalf("nil path address: got %q", got)
	}
}
