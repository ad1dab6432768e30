package identity

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultFederationTimeout bounds the inline federation GET. The serving
// goroutine runs the call synchronously, so an unresponsive peer must not be
// allowed to hold it indefinitely.
const DefaultFederationTimeout = 10 * time.Second

// Resolver resolves an author identifier to a displayable identity, locally
// or via an authenticated federation call. Resolution never returns an
// error: any failure degrades to a fallback record so that enriching a list
// of authors cannot be aborted by one bad peer.
type Resolver struct {
	directory   AuthorDirectory
	cache       RemoteAuthorCache
	credentials CredentialStore
	client      *resty.Client
}

// NewResolver creates a resolver over the given stores. A zero timeout
// selects DefaultFederationTimeout.
func NewResolver(directory AuthorDirectory, cache RemoteAuthorCache, credentials CredentialStore, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultFederationTimeout
	}
	return &Resolver{
		directory:   directory,
		cache:       cache,
		credentials: credentials,
		client:      resty.New().SetTimeout(timeout),
	}
}

// federationResponse is the whitelisted subset of a peer's author document.
// Anything else in the body is deliberately ignored.
type federationResponse struct {
	ID          string `json:"id"`
	Host        string `json:"host"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
}

// Resolve produces a display record for an author identifier. Local authors
// are authoritative; cached remote records are served as-is; otherwise a
// fallback record is built and, when a credential exists, confirmed with a
// single authenticated GET against the identifier URL. Federation failures
// are logged and absorbed.
func (r *Resolver) Resolve(ctx context.Context, authorID string) AuthorRecord {
	if local, err := r.directory.GetAuthor(ctx, authorID); err == nil {
		return *local
	}

	if cached, err := r.cache.Get(ctx, authorID); err == nil {
		return cached.Record()
	}

	fallback := AuthorRecord{
		ID:          authorID,
		Host:        fallbackHost(authorID),
		DisplayName: UnknownDisplayName,
		URL:         authorID,
	}

	cred, err := r.credentials.Lookup(ctx, authorID)
	if err != nil {
		log.Printf("no remote credentials for author %s, using fallback", authorID)
		return fallback
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBasicAuth(cred.Username, cred.Password).
		Get(authorID)
	if err != nil {
		log.Printf("federation call to %s failed: %v", authorID, err)
		return fallback
	}
	if resp.StatusCode() != 200 {
		log.Printf("federation call to %s returned status %d, using fallback", authorID, resp.StatusCode())
		return fallback
	}

	var body federationResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("could not parse author document from %s: %v", authorID, err)
		return fallback
	}

	// Overwrite exactly the whitelisted fields; never merge anything else
	// the peer happens to send.
	record := fallback
	record.ID = body.ID
	record.Host = body.Host
	record.DisplayName = body.DisplayName
	record.URL = body.URL

	if cacheErr := r.cache.Put(ctx, &RemoteAuthorRecord{
		AuthorID:    record.ID,
		Host:        record.Host,
		DisplayName: record.DisplayName,
		URL:         record.URL,
		ResolvedAt:  time.Now().UTC(),
	}); cacheErr != nil {
		log.Printf("failed to cache remote author %s: %v", record.ID, cacheErr)
	}

	return record
}

// fallbackHost derives the host portion of a fallback record from the
// identifier's URL authority, e.g. "http://peer.example/authors/1/" becomes
// "http://peer.example/".
func fallbackHost(authorID string) string {
	u, err := url.Parse(authorID)
	if err != nil || u.Host == "" {
		return authorID
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host}).String() + "/"
}
