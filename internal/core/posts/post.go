package posts

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"Tidepool/internal/core/apperrors"
)

// Visibility controls which requesters may see a post.
type Visibility string

const (
	VisibilityPublic     Visibility = "PUBLIC"
	VisibilityFOAF       Visibility = "FOAF"
	VisibilityFriends    Visibility = "FRIENDS"
	VisibilityPrivate    Visibility = "PRIVATE"
	VisibilityServerOnly Visibility = "SERVERONLY"
)

// Valid reports whether v is one of the five enumerated visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFOAF, VisibilityFriends, VisibilityPrivate, VisibilityServerOnly:
		return true
	}
	return false
}

// Post is a content entry owned by its author. The id is the globally unique
// canonical URL of the post and never changes or gets reused.
type Post struct {
	ID          string     `json:"id" db:"id"`
	AuthorID    string     `json:"author" db:"author_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Content     string     `json:"content" db:"content"`
	ContentType string     `json:"contentType" db:"content_type"`
	Visibility  Visibility `json:"visibility" db:"visibility"`
	Unlisted    bool       `json:"unlisted" db:"unlisted"`
	Published   time.Time  `json:"published" db:"published"`
}

// CreateRequest is the validated input for creating a post. Build one with
// ParseCreateRequest so that field presence is checked against the raw body.
type CreateRequest struct {
	AuthorID    string
	Title       string
	Description string
	Content     string
	ContentType string
	Visibility  Visibility
	Unlisted    bool
	Published   time.Time
	Categories  []string
	VisibleTo   []string
}

// requiredCreateFields are the keys a post creation body must carry.
var requiredCreateFields = []string{"author", "title", "content", "contentType", "visibility"}

// ParseCreateRequest validates a decoded request body and maps it onto a
// CreateRequest. Every absent required key is reported in one MissingFields
// error; a visibility value outside the enum fails with InvalidField.
func ParseCreateRequest(data map[string]interface{}) (*CreateRequest, error) {
	var missing []string
	for _, key := range requiredCreateFields {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing)
	}

	req := &CreateRequest{
		AuthorID:    stringField(data, "author"),
		Title:       stringField(data, "title"),
		Description: stringField(data, "description"),
		Content:     stringField(data, "content"),
		ContentType: stringField(data, "contentType"),
		Visibility:  Visibility(stringField(data, "visibility")),
		Published:   time.Now().UTC(),
	}

	if !req.Visibility.Valid() {
		return nil, apperrors.NewInvalidField("visibility", stringField(data, "visibility"))
	}

	if unlisted, ok := data["unlisted"].(bool); ok {
		req.Unlisted = unlisted
	}

	if raw, ok := data["published"]; ok {
		published, ok := raw.(string)
		if !ok {
			return nil, apperrors.NewInvalidField("published", "")
		}
		ts, err := time.Parse(time.RFC3339, published)
		if err != nil {
			return nil, apperrors.NewInvalidField("published", published)
		}
		req.Published = ts
	}

	req.Categories = normalizeList(data["categories"])
	req.VisibleTo = normalizeList(data["visibleTo"])

	return req, nil
}

// stringField pulls a string out of a decoded body, tolerating absent or
// non-string values as empty.
func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

// normalizeList accepts either a JSON array or a comma-separated string and
// returns the trimmed, non-empty entries.
func normalizeList(raw interface{}) []string {
	var items []string
	switch v := raw.(type) {
	case []interface{}:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(v, ",")
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// CanonicalID expands a path identifier into the canonical post URL served
// by this host. The identifier must be a valid UUID in any accepted textual
// form; anything else fails with MalformedId before existence is checked.
func CanonicalID(host, pid string) (string, error) {
	u, err := uuid.Parse(pid)
	if err != nil {
		return "", apperrors.NewMalformedID("post", pid)
	}
	hex := strings.ReplaceAll(u.String(), "-", "")
	return "http://" + host + "/posts/" + hex + "/", nil
}
