package identity

import (
	"strings"

	"github.com/google/uuid"

	"Tidepool/internal/core/apperrors"
)

// CanonicalAuthorID expands a path identifier into the canonical author URL
// served by this host. The identifier must be a valid UUID in any accepted
// textual form; anything else fails with MalformedId.
func CanonicalAuthorID(host, aid string) (string, error) {
	u, err := uuid.Parse(aid)
	if err != nil {
		return "", apperrors.NewMalformedID("author", aid)
	}
	hex := strings.ReplaceAll(u.String(), "-", "")
	return "http://" + host + "/authors/" + hex + "/", nil
}
