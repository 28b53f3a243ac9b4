package directory

import (
	"fmt"
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// ServicePrincipal is an instance of an application in the directory.
type ServicePrincipal struct {
	*Object
}

// NewServicePrincipal constructs a service principal bound to qc at path.
func NewServicePrincipal(qc *runtime.QueryContext, path *runtime.ResourcePath) *ServicePrincipal {
	sp := &ServicePrincipal{Object: NewObject(qc, path)}
	sp.BindDefaults(sp.defaultFor)
	return sp
}

// defaultFor supplies stand-ins for navigation properties that have not
// been fetched. Sub-collections are memoized so queued operations accumulate
// against one shared, correctly addressed instance.
func (sp *ServicePrincipal) defaultFor(name string) (any, bool, bool) {
	switch name {
	case "owners", "ownedObjects", "createdObjects":
		return NewObjectCollection(sp.Context(), sp.Path().Child(name)), true, true
	case "keyCredentials":
		return []any{}, true, true
	case "appRoles", "oauth2PermissionScopes":
		return []any{}, false, true
	default:
		return nil, false, false
	}
}

// AccountEnabled reports whether sign-in to the represented app is allowed.
func (sp *ServicePrincipal) AccountEnabled() bool { return sp.Bool("accountEnabled") }

// AppID returns the identifier of the associated application registration.
func (sp *ServicePrincipal) AppID() string { return sp.String("appId") }

// AppDescription returns the description exposed by the application.
func (sp *ServicePrincipal) AppDescription() string { return sp.String("appDescription") }

// AppDisplayName returns the display name exposed by the application.
func (sp *ServicePrincipal) AppDisplayName() string { return sp.String("appDisplayName") }

// Homepage returns the app's landing page.
func (sp *ServicePrincipal) Homepage() string { return sp.String("homepage") }

// LoginURL returns where the provider redirects users to authenticate.
func (sp *ServicePrincipal) LoginURL() string { return sp.String("loginUrl") }

// LogoutURL returns the URL used for front- or back-channel logout.
func (sp *ServicePrincipal) LogoutURL() string { return sp.String("logoutUrl") }

// ServicePrincipalType identifies an application, managed identity or
// legacy principal.
func (sp *ServicePrincipal) ServicePrincipalType() string {
	return sp.String("servicePrincipalType")
}

// TokenEncryptionKeyID names the public key used to encrypt issued tokens.
func (sp *ServicePrincipal) TokenEncryptionKeyID() string {
	return sp.String("tokenEncryptionKeyId")
}

// NotificationEmailAddresses lists where certificate-expiry notices go.
func (sp *ServicePrincipal) NotificationEmailAddresses() []string {
	var out []string
	_ = sp.Decode("notificationEmailAddresses", &out)
	return out
}

// KeyCredentials returns the key credentials known for the principal.
func (sp *ServicePrincipal) KeyCredentials() []KeyCredential {
	var out []KeyCredential
	_ = sp.Decode("keyCredentials", &out)
	return out
}

// AppRoles returns the roles exposed by the represented application.
func (sp *ServicePrincipal) AppRoles() []AppRole {
	var out []AppRole
	_ = sp.Decode("appRoles", &out)
	return out
}

// PermissionScopes returns the delegated permissions the app exposes.
func (sp *ServicePrincipal) PermissionScopes() []PermissionScope {
	var out []PermissionScope
	_ = sp.Decode("oauth2PermissionScopes", &out)
	return out
}

// Owners returns the directory objects allowed to modify this principal.
// The collection is bound under the principal's path and memoized.
func (sp *ServicePrincipal) Owners() *ObjectCollection {
	col, _ := sp.Property("owners", nil).(*ObjectCollection)
	return col
}

// OwnedObjects returns the directory objects owned by this principal.
func (sp *ServicePrincipal) OwnedObjects() *ObjectCollection {
	col, _ := sp.Property("ownedObjects", nil).(*ObjectCollection)
	return col
}

// CreatedObjects returns the directory objects created by this principal.
func (sp *ServicePrincipal) CreatedObjects() *ObjectCollection {
	col, _ := sp.Property("createdObjects", nil).(*ObjectCollection)
	return col
}

// AddKey enqueues rolling a new key credential onto the principal. The
// password credential is required only for X509CertAndPassword keys; proof
// is a self-signed JWT proving possession of the existing keys. The result
// carries the created key credential after the flush.
func (sp *ServicePrincipal) AddKey(key KeyCredential, password *PasswordCredential, proof string) *runtime.Result {
	ret := runtime.NewResult()
	payload := map[string]any{
		"keyCredential":      key,
		"passwordCredential": password,
		"proof":              proof,
	}
	sp.Context().Add(runtime.NewInvoke(sp.Path(), "addKey", payload, "", ret))
	return ret
}

// AddPassword enqueues generation of a strong password for the principal.
// The secret text is only ever readable from the flushed result.
func (sp *ServicePrincipal) AddPassword(displayName string) *runtime.Result {
	ret := runtime.NewResult()
	payload := PasswordCredential{DisplayName: displayName}
	sp.Context().Add(runtime.NewInvoke(sp.Path(), "addPassword", payload, "passwordCredential", ret))
	return ret
}

// AddTokenSigningCertificate enqueues creation of a self-signed signing
// certificate. displayName must start with "CN="; endDateTime may be zero
// for the service default of three years.
func (sp *ServicePrincipal) AddTokenSigningCertificate(displayName string, endDateTime time.Time) *runtime.Result {
	ret := runtime.NewResult()
	payload := map[string]any{"displayName": displayName}
	if !endDateTime.IsZero() {
		payload["endDateTime"] = endDateTime.UTC().Format(time.RFC3339)
	}
	sp.Context().Add(runtime.NewInvoke(sp.Path(), "addTokenSigningCertificate", payload, "", ret))
	return ret
}

// RemovePassword enqueues removal of the password identified by keyID and
// returns the principal for chaining.
func (sp *ServicePrincipal) RemovePassword(keyID string) *ServicePrincipal {
	sp.Context().Add(runtime.NewInvoke(sp.Path(), "removePassword", map[string]any{"keyId": keyID}, "", nil))
	return sp
}

// ServicePrincipalCollection addresses the servicePrincipals resource.
type ServicePrincipalCollection struct {
	*runtime.Collection
}

// NewServicePrincipalCollection constructs the collection at path.
func NewServicePrincipalCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *ServicePrincipalCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewServicePrincipal(qc, p)
	})
	return &ServicePrincipalCollection{Collection: col}
}

// ByID navigates to a single principal without any network access.
func (c *ServicePrincipalCollection) ByID(id string) *ServicePrincipal {
	return NewServicePrincipal(c.Context(), c.Path().Child(id))
}

// GetByAppID navigates to the principal keyed by the appId of its associated
// application registration, an alternate key to the directory id. No network
// access.
func (c *ServicePrincipalCollection) GetByAppID(appID string) *ServicePrincipal {
	return NewServicePrincipal(c.Context(), c.Path().Child(fmt.Sprintf("appId('%s')", appID)))
}

// Add enqueues creation of a service principal for the given appId.
func (c *ServicePrincipalCollection) Add(props runtime.PropertySet) *ServicePrincipal {
	return c.Collection.Add(props).(*ServicePrincipal)
}
