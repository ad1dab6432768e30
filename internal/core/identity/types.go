package identity

import "time"

// UnknownDisplayName is the sentinel display name used when a remote author
// cannot be confirmed.
const UnknownDisplayName = "UnknownRemoteUser"

// AuthorRecord is the displayable identity produced by resolution. For local
// authors it is authoritative; for remote authors it is either a cached copy,
// a confirmed federation response, or a best-effort fallback.
type AuthorRecord struct {
	ID          string `json:"id"`
	Host        string `json:"host"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
	GitHub      string `json:"github,omitempty"`
}

// RemoteAuthorRecord is the cached form of a non-local identity, created
// lazily the first time a remote author is confirmed. Never authoritative.
type RemoteAuthorRecord struct {
	AuthorID    string
	Host        string
	DisplayName string
	URL         string
	GitHub      string
	ResolvedAt  time.Time
}

// Record converts the cached row into a display record.
func (r *RemoteAuthorRecord) Record() AuthorRecord {
	return AuthorRecord{
		ID:          r.AuthorID,
		Host:        r.Host,
		DisplayName: r.DisplayName,
		URL:         r.URL,
		GitHub:      r.GitHub,
	}
}

// Credential authenticates outbound federation calls for a given identity.
type Credential struct {
	IdentityPrefix string
	Username       string
	Password       string
}
