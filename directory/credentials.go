package directory

import "time"

// Value objects: structured payloads with no identity and no resource path.
// Equality is structural and they marshal straight into request bodies.

// KeyCredential is a certificate-based credential of a service principal.
type KeyCredential struct {
	CustomKeyIdentifier string     `json:"customKeyIdentifier,omitempty"`
	DisplayName         string     `json:"displayName,omitempty"`
	KeyID               string     `json:"keyId,omitempty"`
	Type                string     `json:"type,omitempty"`
	Usage               string     `json:"usage,omitempty"`
	Key                 string     `json:"key,omitempty"`
	StartDateTime       *time.Time `json:"startDateTime,omitempty"`
	EndDateTime         *time.Time `json:"endDateTime,omitempty"`
}

// PasswordCredential is a secret-based credential.
type PasswordCredential struct {
	DisplayName   string     `json:"displayName,omitempty"`
	KeyID         string     `json:"keyId,omitempty"`
	SecretText    string     `json:"secretText,omitempty"`
	Hint          string     `json:"hint,omitempty"`
	StartDateTime *time.Time `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time `json:"endDateTime,omitempty"`
}

// SelfSignedCertificate is the public part of a generated signing
// certificate.
type SelfSignedCertificate struct {
	CustomKeyIdentifier string     `json:"customKeyIdentifier,omitempty"`
	DisplayName         string     `json:"displayName,omitempty"`
	KeyID               string     `json:"keyId,omitempty"`
	Thumbprint          string     `json:"thumbprint,omitempty"`
	Key                 string     `json:"key,omitempty"`
	Type                string     `json:"type,omitempty"`
	Usage               string     `json:"usage,omitempty"`
	StartDateTime       *time.Time `json:"startDateTime,omitempty"`
	EndDateTime         *time.Time `json:"endDateTime,omitempty"`
}

// AppRole is a role exposed by the application a service principal
// represents.
type AppRole struct {
	ID                 string   `json:"id,omitempty"`
	DisplayName        string   `json:"displayName,omitempty"`
	Description        string   `json:"description,omitempty"`
	Value              string   `json:"value,omitempty"`
	IsEnabled          bool     `json:"isEnabled,omitempty"`
	AllowedMemberTypes []string `json:"allowedMemberTypes,omitempty"`
}

// PermissionScope is a delegated permission exposed by an application.
type PermissionScope struct {
	ID                      string `json:"id,omitempty"`
	Value                   string `json:"value,omitempty"`
	Type                    string `json:"type,omitempty"`
	IsEnabled               bool   `json:"isEnabled,omitempty"`
	AdminConsentDisplayName string `json:"adminConsentDisplayName,omitempty"`
	AdminConsentDescription string `json:"adminConsentDescription,omitempty"`
	UserConsentDisplayName  string `json:"userConsentDisplayName,omitempty"`
	UserConsentDescription  string `json:"userConsentDescription,omitempty"`
}
