package directory

import (
	"context"
	"testing"

	"github.com/corridorhq/corridor-go/runtime"
)

// recordingExecutor captures operations instead of performing I/O.
type recordingExecutor struct {
	ops []*runtime.Operation
}

func (r *recordingExecutor) Execute(ctx context.Context, ops []*runtime.Operation) error {
	r.ops = append(r.ops, ops...)
	return nil
}

func newPrincipal() (*ServicePrincipal, *runtime.QueryContext) {
	qc := runtime.NewQueryContext()
	path := runtime.NewPath("servicePrincipals", nil).Child("sp1")
	return NewServicePrincipal(qc, path), qc
}

func TestServicePrincipal_OwnersMemoizedAndBound(t *testing.T) {
	t.Parallel()
	sp, _ := newPrincipal()

	first := sp.Owners()
	second := sp.Owners()
	if first == nil || first != second {
		t.Fatalf("owners must be the same instance on repeated access: %p vs %p", first, second)
	}
	if got := first.Path().Address(); got != "servicePrincipals/sp1/owners" {
		t.Fatalf("owners address: %q", got)
	}
}

func TestServicePrincipal_UnknownPropertyIsNil(t *testing.T) {
	t.Parallel()
	sp, _ := newPrincipal()
	if got := sp.Property("somethingServerSideAndNew", nil); got != nil {
		t.Fatalf("unknown property should read as nil, got %v", got)
	}
	if sp.AppDisplayName() != "" || sp.AccountEnabled() {
		t.Fatal("unfetched scalars should read as zero values")
	}
}

func TestServicePrincipal_AddToDefaultOwnersRoundTrip(t *testing.T) {
	t.Parallel()
	sp, qc := newPrincipal()

	owner := sp.Owners().Add(runtime.PropertySet{"id": "u7"})
	if owner == nil {
		t.Fatal("Add must return the local stand-in")
	}

	rec := &recordingExecutor{}
	if err := qc.Flush(context.Background(), rec); err != nil {
		t.Fatalf("flush error: %v", err)
	}
	if len(rec.ops) != 1 {
		t.Fatalf("expected exactly one recorded operation, got %d", len(rec.ops))
	}
	op := rec.ops[0]
	if op.Kind != runtime.OpCreate {
		t.Fatalf("expected create, got %v", op.Kind)
	}
	if got := op.Address(); got != "servicePrincipals/sp1/owners" {
		t.Fatalf("operation address: %q", got)
	}
}

func TestServicePrincipal_OperationsQueueInOrder(t *testing.T) {
	t.Parallel()
	sp, qc := newPrincipal()

	keyResult := sp.AddKey(KeyCredential{Type: "AsymmetricX509Cert", Usage: "Verify"}, nil, "jwt-proof")
	pwResult := sp.AddPassword("rotation 2026")
	sp.RemovePassword("old-key-id")

	ops := qc.Pending()
	if len(ops) != 3 {
		t.Fatalf("expected 3 queued operations, got %d", len(ops))
	}
	for i, want := range []string{"addKey", "addPassword", "removePassword"} {
		if ops[i].Kind != runtime.OpInvoke || ops[i].Name != want {
			t.Fatalf("operation %d: got %s %q", i, ops[i].Kind, ops[i].Name)
		}
		if got := ops[i].Address(); got != "servicePrincipals/sp1" {
			t.Fatalf("operation %d address: %q", i, got)
		}
	}
	if keyResult.Populated() || pwResult.Populated() {
		t.Fatal("results must stay unpopulated before the flush")
	}
}

func TestServicePrincipal_ResultPopulatedOnFlush(t *testing.T) {
	t.Parallel()
	sp, qc := newPrincipal()
	ret := sp.AddPassword("demo")

	exec := executorFunc(func(ctx context.Context, ops []*runtime.Operation) error {
		for _, op := range ops {
			if op.Return != nil {
				op.Return.SetProperty("secretText", "s3cr3t")
				op.Return.SetProperty("keyId", "k1")
			}
		}
		return nil
	})
	if err := qc.Flush(context.Background(), exec); err != nil {
		t.Fatalf("flush error: %v", err)
	}

	var cred PasswordCredential
	if err := ret.Decode(&cred); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if cred.SecretText != "s3cr3t" || cred.KeyID != "k1" {
		t.Fatalf("decoded credential mismatch: %+v", cred)
	}
}

func TestServicePrincipalCollection_ByIDNavigation(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	col := NewServicePrincipalCollection(qc, runtime.NewPath("servicePrincipals", nil))

	sp := col.ByID("sp9")
	if got := sp.Path().Address(); got != "servicePrincipals/sp9" {
		t.Fatalf("navigation address: %q", got)
	}
	if qc.Len() != 0 {
		t.Fatal("pure navigation must not queue operations")
	}
}

func TestServicePrincipalCollection_GetByAppIDNavigation(t *testing.T) {
	t.Parallel()
	qc := runtime.NewQueryContext()
	col := NewServicePrincipalCollection(qc, runtime.NewPath("servicePrincipals", nil))

	sp := col.GetByAppID("11af41cb")
	if got := sp.Path().Address(); got != "servicePrincipals/appId('11af41cb')" {
		t.Fatalf("alternate-key address: %q", got)
	}
	if qc.Len() != 0 {
		t.Fatal("pure navigation must not queue operations")
	}

	// The alternate-key binding behaves like any other principal.
	sp.Owners().Add(runtime.PropertySet{"id": "u1"})
	ops := qc.Pending()
	if len(ops) != 1 || ops[0].Address() != "servicePrincipals/appId('11af41cb')/owners" {
		t.Fatalf("queued operations: %+v", ops)
	}
}

type executorFunc func(ctx context.Context, ops []*runtime.Operation) error

func (f executorFunc) Execute(ctx context.Context, ops []*runtime.Operation) error {
	return f(ctx, ops)
}
