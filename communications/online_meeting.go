// Package communications models online meetings.
package communications

import (
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// Identity references a directory principal by id and display name.
type Identity struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// IdentitySet groups the identities acting in one role.
type IdentitySet struct {
	Application *Identity `json:"application,omitempty"`
	User        *Identity `json:"user,omitempty"`
}

// MeetingParticipantInfo describes one participant.
type MeetingParticipantInfo struct {
	Identity *IdentitySet `json:"identity,omitempty"`
	Role     string       `json:"role,omitempty"`
	Upn      string       `json:"upn,omitempty"`
}

// MeetingParticipants lists the organizer and attendees of a meeting.
type MeetingParticipants struct {
	Organizer *MeetingParticipantInfo  `json:"organizer,omitempty"`
	Attendees []MeetingParticipantInfo `json:"attendees,omitempty"`
}

// OnlineMeeting carries the join URL, attendee list and settings of a
// meeting.
type OnlineMeeting struct {
	*runtime.Entity
}

// NewOnlineMeeting constructs a meeting bound to qc at path.
func NewOnlineMeeting(qc *runtime.QueryContext, path *runtime.ResourcePath) *OnlineMeeting {
	m := &OnlineMeeting{Entity: runtime.NewEntity(qc, path)}
	m.BindDefaults(func(name string) (any, bool, bool) {
		if name == "participants" {
			return MeetingParticipants{}, false, true
		}
		return nil, false, false
	})
	return m
}

// Subject returns the meeting subject line.
func (m *OnlineMeeting) Subject() string { return m.String("subject") }

// JoinWebURL is the link used to join the meeting.
func (m *OnlineMeeting) JoinWebURL() string { return m.String("joinWebUrl") }

// ExternalID is the caller-supplied correlation id for createOrGet.
func (m *OnlineMeeting) ExternalID() string { return m.String("externalId") }

// StartDateTime reports when the meeting starts.
func (m *OnlineMeeting) StartDateTime() time.Time { return m.Time("startDateTime") }

// EndDateTime reports when the meeting ends.
func (m *OnlineMeeting) EndDateTime() time.Time { return m.Time("endDateTime") }

// AllowAttendeeToEnableCamera reports whether attendees may turn on video.
func (m *OnlineMeeting) AllowAttendeeToEnableCamera() bool {
	return m.Bool("allowAttendeeToEnableCamera")
}

// AllowAttendeeToEnableMic reports whether attendees may unmute.
func (m *OnlineMeeting) AllowAttendeeToEnableMic() bool {
	return m.Bool("allowAttendeeToEnableMic")
}

// AllowedPresenters says who can present: everyone, organization,
// roleIsPresenter, organizer.
func (m *OnlineMeeting) AllowedPresenters() string { return m.String("allowedPresenters") }

// Participants returns the organizer and attendees.
func (m *OnlineMeeting) Participants() MeetingParticipants {
	if v, ok := m.Property("participants", nil).(MeetingParticipants); ok {
		return v
	}
	var out MeetingParticipants
	_ = m.Decode("participants", &out)
	return out
}

// OnlineMeetingCollection addresses the onlineMeetings resource.
type OnlineMeetingCollection struct {
	*runtime.Collection
}

// NewOnlineMeetingCollection constructs the collection at path.
func NewOnlineMeetingCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *OnlineMeetingCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewOnlineMeeting(qc, p)
	})
	return &OnlineMeetingCollection{Collection: col}
}

// CreateOrGet enqueues the idempotent createOrGet operation keyed by
// externalID and returns a meeting stand-in backfilled on flush.
func (c *OnlineMeetingCollection) CreateOrGet(externalID string) *OnlineMeeting {
	meeting := NewOnlineMeeting(c.Context(), c.Path())
	payload := map[string]any{"externalId": externalID}
	c.Context().Add(runtime.NewInvoke(c.Path(), "createOrGet", payload, "", meeting))
	return meeting
}
