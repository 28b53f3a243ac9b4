package directory

import (
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// AppIdentity identifies the application that initiated an activity.
type AppIdentity struct {
	AppID                string `json:"appId,omitempty"`
	DisplayName          string `json:"displayName,omitempty"`
	ServicePrincipalID   string `json:"servicePrincipalId,omitempty"`
	ServicePrincipalName string `json:"servicePrincipalName,omitempty"`
}

// UserIdentity identifies the user that initiated an activity.
type UserIdentity struct {
	ID                string `json:"id,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	IPAddress         string `json:"ipAddress,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
}

// AuditActivityInitiator is either the app or the user behind an audit
// record; the unused arm stays nil.
type AuditActivityInitiator struct {
	App  *AppIdentity  `json:"app,omitempty"`
	User *UserIdentity `json:"user,omitempty"`
}

// AuditLog is the audit root; it exposes the directory audit and sign-in
// collections and has no usable scalar properties of its own.
type AuditLog struct {
	*runtime.Entity
}

// NewAuditLog constructs the audit root bound to qc at path.
func NewAuditLog(qc *runtime.QueryContext, path *runtime.ResourcePath) *AuditLog {
	a := &AuditLog{Entity: runtime.NewEntity(qc, path)}
	a.BindDefaults(a.defaultFor)
	return a
}

func (a *AuditLog) defaultFor(name string) (any, bool, bool) {
	switch name {
	case "directoryAudits":
		return NewAuditCollection(a.Context(), a.Path().Child(name)), true, true
	case "signIns":
		return NewSignInCollection(a.Context(), a.Path().Child(name)), true, true
	default:
		return nil, false, false
	}
}

// DirectoryAudits returns the audit-record collection.
func (a *AuditLog) DirectoryAudits() *AuditCollection {
	col, _ := a.Property("directoryAudits", nil).(*AuditCollection)
	return col
}

// SignIns returns the sign-in activity collection.
func (a *AuditLog) SignIns() *SignInCollection {
	col, _ := a.Property("signIns", nil).(*SignInCollection)
	return col
}

// Audit is one directory audit record.
type Audit struct {
	*runtime.Entity
}

// NewAudit constructs an audit record bound to qc at path.
func NewAudit(qc *runtime.QueryContext, path *runtime.ResourcePath) *Audit {
	a := &Audit{Entity: runtime.NewEntity(qc, path)}
	a.BindDefaults(func(name string) (any, bool, bool) {
		if name == "initiatedBy" {
			return AuditActivityInitiator{}, false, true
		}
		return nil, false, false
	})
	return a
}

// ActivityDateTime reports when the activity was performed.
func (a *Audit) ActivityDateTime() time.Time { return a.Time("activityDateTime") }

// ActivityDisplayName names the operation, e.g. "Add member to group".
func (a *Audit) ActivityDisplayName() string { return a.String("activityDisplayName") }

// Category names the resource category targeted by the activity.
func (a *Audit) Category() string { return a.String("category") }

// CorrelationID ties together activities that span services.
func (a *Audit) CorrelationID() string { return a.String("correlationId") }

// OperationType is Add, Assign, Update, Unassign or Delete.
func (a *Audit) OperationType() string { return a.String("operationType") }

// LoggedByService names the service that recorded the activity.
func (a *Audit) LoggedByService() string { return a.String("loggedByService") }

// ResultReason explains a failed or timed-out activity.
func (a *Audit) ResultReason() string { return a.String("resultReason") }

// InitiatedBy returns who performed the activity. Unfetched records yield
// the empty initiator, never an error.
func (a *Audit) InitiatedBy() AuditActivityInitiator {
	if v, ok := a.Property("initiatedBy", nil).(AuditActivityInitiator); ok {
		return v
	}
	var out AuditActivityInitiator
	_ = a.Decode("initiatedBy", &out)
	return out
}

// AuditCollection is the set of directory audit records.
type AuditCollection struct {
	*runtime.Collection
}

// NewAuditCollection constructs the collection at path.
func NewAuditCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *AuditCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewAudit(qc, p)
	})
	return &AuditCollection{Collection: col}
}
