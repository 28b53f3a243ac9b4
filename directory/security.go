package directory

import "github.com/corridorhq/corridor-go/runtime"

// Security is the entry point of the security object model. It is a
// singleton with no usable scalar properties; everything hangs off its
// sub-collections.
type Security struct {
	*runtime.Entity
}

// NewSecurity constructs the security root bound to qc at path.
func NewSecurity(qc *runtime.QueryContext, path *runtime.ResourcePath) *Security {
	s := &Security{Entity: runtime.NewEntity(qc, path)}
	s.BindDefaults(s.defaultFor)
	return s
}

func (s *Security) defaultFor(name string) (any, bool, bool) {
	switch name {
	case "alerts":
		return NewAlertCollection(s.Context(), s.Path().Child(name)), true, true
	case "incidents":
		return NewIncidentCollection(s.Context(), s.Path().Child(name)), true, true
	default:
		return nil, false, false
	}
}

// Alerts returns the alert collection.
func (s *Security) Alerts() *AlertCollection {
	col, _ := s.Property("alerts", nil).(*AlertCollection)
	return col
}

// Incidents returns the incident collection: correlated alerts that tell
// the story of one attack.
func (s *Security) Incidents() *IncidentCollection {
	col, _ := s.Property("incidents", nil).(*IncidentCollection)
	return col
}

// Alert is a detected security issue.
type Alert struct {
	*runtime.Entity
}

// NewAlert constructs an alert bound to qc at path.
func NewAlert(qc *runtime.QueryContext, path *runtime.ResourcePath) *Alert {
	return &Alert{Entity: runtime.NewEntity(qc, path)}
}

func (a *Alert) Title() string    { return a.String("title") }
func (a *Alert) Severity() string { return a.String("severity") }
func (a *Alert) Status() string   { return a.String("status") }
func (a *Alert) Category() string { return a.String("category") }

// AlertCollection is the set of security alerts.
type AlertCollection struct {
	*runtime.Collection
}

// NewAlertCollection constructs the collection at path.
func NewAlertCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *AlertCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewAlert(qc, p)
	})
	return &AlertCollection{Collection: col}
}

// Incident is a set of correlated alerts and their metadata.
type Incident struct {
	*runtime.Entity
}

// NewIncident constructs an incident bound to qc at path.
func NewIncident(qc *runtime.QueryContext, path *runtime.ResourcePath) *Incident {
	return &Incident{Entity: runtime.NewEntity(qc, path)}
}

func (i *Incident) DisplayName() string    { return i.String("displayName") }
func (i *Incident) Severity() string       { return i.String("severity") }
func (i *Incident) Classification() string { return i.String("classification") }

// IncidentCollection is the set of security incidents.
type IncidentCollection struct {
	*runtime.Collection
}

// NewIncidentCollection constructs the collection at path.
func NewIncidentCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *IncidentCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewIncident(qc, p)
	})
	return &IncidentCollection{Collection: col}
}
