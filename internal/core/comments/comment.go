package comments

import (
	"time"

	"Tidepool/internal/core/apperrors"
)

// Comment is a reply attached to exactly one post. The post reference is
// fixed at creation and must resolve to an existing post; the author may be
// local or remote.
type Comment struct {
	ID          string    `json:"id" db:"id"`
	PostID      string    `json:"post" db:"post_id"`
	AuthorID    string    `json:"author" db:"author_id"`
	Comment     string    `json:"comment" db:"comment"`
	ContentType string    `json:"contentType" db:"content_type"`
	Published   time.Time `json:"published" db:"published"`
}

// AddRequest is the validated input for attaching a comment to a post.
type AddRequest struct {
	// PostID is the post id the caller declared in the body. It must match
	// the post resolved from the request path.
	PostID  string
	Comment Comment
}

// ParseAddRequest validates a decoded addComment body of the shape
// {post, comment:{id, author:{id}, comment, contentType, [published]}}.
// Every absent required key is reported in one MissingFields error, nested
// keys in dotted form.
func ParseAddRequest(data map[string]interface{}) (*AddRequest, error) {
	var missing []string

	if _, ok := data["post"]; !ok {
		missing = append(missing, "post")
	}

	var comment map[string]interface{}
	if raw, ok := data["comment"]; !ok {
		missing = append(missing, "comment")
	} else {
		comment, ok = raw.(map[string]interface{})
		if !ok {
			return nil, apperrors.NewInvalidField("comment", "")
		}
		for _, key := range []string{"id", "author", "comment", "contentType"} {
			if _, ok := comment[key]; !ok {
				missing = append(missing, "comment."+key)
			}
		}
		if rawAuthor, ok := comment["author"]; ok {
			author, ok := rawAuthor.(map[string]interface{})
			if !ok {
				return nil, apperrors.NewInvalidField("comment.author", "")
			}
			if _, ok := author["id"]; !ok {
				missing = append(missing, "comment.author.id")
			}
		}
	}

	if len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing)
	}

	postID, ok := data["post"].(string)
	if !ok {
		return nil, apperrors.NewInvalidField("post", "")
	}

	author := comment["author"].(map[string]interface{})
	req := &AddRequest{
		PostID: postID,
		Comment: Comment{
			ID:          stringField(comment, "id"),
			AuthorID:    stringField(author, "id"),
			Comment:     stringField(comment, "comment"),
			ContentType: stringField(comment, "contentType"),
			Published:   time.Now().UTC(),
		},
	}

	if raw, ok := comment["published"]; ok {
		published, ok := raw.(string)
		if !ok {
			return nil, apperrors.NewInvalidField("comment.published", "")
		}
		ts, err := time.Parse(time.RFC3339, published)
		if err != nil {
			return nil, apperrors.NewInvalidField("comment.published", published)
		}
		req.Comment.Published = ts
	}

	return req, nil
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}
