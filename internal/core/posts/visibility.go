package posts

import (
	"context"
	"sort"
)

// VisibilityRule is an extension hook contributing additional posts to a
// requester's visible set. FRIENDS/FOAF tiers, gated on mutual follow
// edges, plug in here once their merge semantics are settled; none are
// registered by default.
type VisibilityRule func(ctx context.Context, requesterID string) ([]*Post, error)

// VisibleTo computes the ordered set of posts the requester may see:
// listed PUBLIC/SERVERONLY posts, everything the requester authored, and
// non-unlisted PRIVATE posts carrying an explicit grant for them. The union
// is deduplicated by post id before ordering, so a post matching several
// rules appears once. Results are sorted by published time, newest first.
// An empty result is valid, not an error.
func (s *Service) VisibleTo(ctx context.Context, requesterID string, extra ...VisibilityRule) ([]*Post, error) {
	listed, err := s.repo.ListListed(ctx)
	if err != nil {
		return nil, err
	}

	own, err := s.repo.ListByAuthor(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	shared, err := s.repo.ListSharedWith(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Post)
	for _, source := range [][]*Post{listed, own, shared} {
		for _, post := range source {
			byID[post.ID] = post
		}
	}

	for _, rule := range extra {
		more, err := rule(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		for _, post := range more {
			byID[post.ID] = post
		}
	}

	visible := make([]*Post, 0, len(byID))
	for _, post := range byID {
		visible = append(visible, post)
	}

	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Published.Equal(visible[j].Published) {
			return visible[i].ID < visible[j].ID
		}
		return visible[i].Published.After(visible[j].Published)
	})

	return visible, nil
}
