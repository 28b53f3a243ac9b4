// Package changes models the change log: a polymorphic collection whose
// concrete item type is decided per record from the raw property names,
// before the record is materialized.
package changes

import (
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// Token is an opaque position marker in the change log.
type Token struct {
	StringValue string `json:"stringValue,omitempty"`
}

// Change is the base type of every change record.
type Change struct {
	*runtime.Entity
}

// NewChange constructs a base change record bound to qc at path.
func NewChange(qc *runtime.QueryContext, path *runtime.ResourcePath) *Change {
	c := &Change{Entity: runtime.NewEntity(qc, path)}
	c.BindDefaults(func(name string) (any, bool, bool) {
		if name == "ChangeToken" {
			return Token{}, false, true
		}
		return nil, false, false
	})
	return c
}

// ChangeToken returns the record's position marker; the empty token when
// the record has not been fetched.
func (c *Change) ChangeToken() Token {
	if v, ok := c.Property("ChangeToken", nil).(Token); ok {
		return v
	}
	var out Token
	_ = c.Decode("ChangeToken", &out)
	return out
}

// ChangeType names what happened: add, update, delete, rename, move.
func (c *Change) ChangeType() string { return c.String("ChangeType") }

// SiteID identifies the site of the changed item.
func (c *Change) SiteID() string { return c.String("SiteId") }

// Time reports when the object was modified.
func (c *Change) Time() time.Time { return c.Entity.Time("Time") }

// ListChange records a change to a list.
type ListChange struct{ *Change }

func (c *ListChange) ListID() string { return c.String("ListId") }
func (c *ListChange) WebID() string  { return c.String("WebId") }

// ItemChange records a change to a list item.
type ItemChange struct{ *Change }

func (c *ItemChange) ItemID() string { return c.String("ItemId") }
func (c *ItemChange) ListID() string { return c.String("ListId") }

// WebChange records a change to a web.
type WebChange struct{ *Change }

func (c *WebChange) WebID() string { return c.String("WebId") }

// UserChange records a change to a user.
type UserChange struct{ *Change }

func (c *UserChange) UserID() string { return c.String("UserId") }

// GroupChange records a change to a group.
type GroupChange struct{ *Change }

func (c *GroupChange) GroupID() string { return c.String("GroupId") }

// ContentTypeChange records a change to a content type.
type ContentTypeChange struct{ *Change }

func (c *ContentTypeChange) ContentTypeID() string { return c.String("ContentTypeId") }

// AlertChange records a change to an alert.
type AlertChange struct{ *Change }

func (c *AlertChange) AlertID() string { return c.String("AlertId") }

// FieldChange records a change to a field.
type FieldChange struct{ *Change }

func (c *FieldChange) FieldID() string { return c.String("FieldId") }
