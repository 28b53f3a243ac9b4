package directory

import (
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// DeviceDetail describes the device a sign-in came from.
type DeviceDetail struct {
	Browser         string `json:"browser,omitempty"`
	DeviceID        string `json:"deviceId,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	IsCompliant     bool   `json:"isCompliant,omitempty"`
	IsManaged       bool   `json:"isManaged,omitempty"`
	OperatingSystem string `json:"operatingSystem,omitempty"`
	TrustType       string `json:"trustType,omitempty"`
}

// SignInStatus carries the outcome of a sign-in attempt.
type SignInStatus struct {
	ErrorCode         int    `json:"errorCode,omitempty"`
	FailureReason     string `json:"failureReason,omitempty"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

// GeoCoordinates locates a sign-in.
type GeoCoordinates struct {
	Altitude  float64 `json:"altitude,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// SignInLocation is the city/state/country a sign-in originated from.
type SignInLocation struct {
	City            string          `json:"city,omitempty"`
	State           string          `json:"state,omitempty"`
	CountryOrRegion string          `json:"countryOrRegion,omitempty"`
	GeoCoordinates  *GeoCoordinates `json:"geoCoordinates,omitempty"`
}

// SignIn details one user or application sign-in.
type SignIn struct {
	*runtime.Entity
}

// NewSignIn constructs a sign-in record bound to qc at path.
func NewSignIn(qc *runtime.QueryContext, path *runtime.ResourcePath) *SignIn {
	s := &SignIn{Entity: runtime.NewEntity(qc, path)}
	s.BindDefaults(func(name string) (any, bool, bool) {
		switch name {
		case "deviceDetail":
			return DeviceDetail{}, false, true
		case "status":
			return SignInStatus{}, false, true
		case "location":
			return SignInLocation{}, false, true
		default:
			return nil, false, false
		}
	})
	return s
}

// AppDisplayName is the app name shown in the portal.
func (s *SignIn) AppDisplayName() string { return s.String("appDisplayName") }

// AppID is the app the sign-in targeted.
func (s *SignIn) AppID() string { return s.String("appId") }

// ClientAppUsed identifies the client: Browser, Exchange ActiveSync, IMAP...
func (s *SignIn) ClientAppUsed() string { return s.String("clientAppUsed") }

// CorrelationID is the client request id of the sign-in.
func (s *SignIn) CorrelationID() string { return s.String("correlationId") }

// CreatedDateTime reports when the sign-in started.
func (s *SignIn) CreatedDateTime() time.Time { return s.Time("createdDateTime") }

// IPAddress is the client address used to sign in.
func (s *SignIn) IPAddress() string { return s.String("ipAddress") }

// IsInteractive reports whether a user drove the sign-in.
func (s *SignIn) IsInteractive() bool { return s.Bool("isInteractive") }

// UserPrincipalName identifies who signed in.
func (s *SignIn) UserPrincipalName() string { return s.String("userPrincipalName") }

// DeviceDetail returns device information for the sign-in.
func (s *SignIn) DeviceDetail() DeviceDetail {
	if v, ok := s.Property("deviceDetail", nil).(DeviceDetail); ok {
		return v
	}
	var out DeviceDetail
	_ = s.Decode("deviceDetail", &out)
	return out
}

// Status returns the sign-in outcome.
func (s *SignIn) Status() SignInStatus {
	if v, ok := s.Property("status", nil).(SignInStatus); ok {
		return v
	}
	var out SignInStatus
	_ = s.Decode("status", &out)
	return out
}

// Location returns where the sign-in originated.
func (s *SignIn) Location() SignInLocation {
	if v, ok := s.Property("location", nil).(SignInLocation); ok {
		return v
	}
	var out SignInLocation
	_ = s.Decode("location", &out)
	return out
}

// SignInCollection is the set of sign-in records.
type SignInCollection struct {
	*runtime.Collection
}

// NewSignInCollection constructs the collection at path.
func NewSignInCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *SignInCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewSignIn(qc, p)
	})
	return &SignInCollection{Collection: col}
}
