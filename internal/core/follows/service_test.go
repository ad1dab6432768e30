package follows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tidepool/internal/core/apperrors"
)

// mockFollowRepo is a map-backed implementation of the Repository interface.
type mockFollowRepo struct {
	edges map[string]*Follow
}

func newMockFollowRepo() *mockFollowRepo {
	return &mockFollowRepo{edges: make(map[string]*Follow)}
}

func key(follower, followee string) string { return follower + "|" + followee }

func (m *mockFollowRepo) Create(ctx context.Context, follow *Follow) error {
	k := key(follow.Follower, follow.Followee)
	if _, ok := m.edges[k]; ok {
		return ErrFollowExists
	}
	m.edges[k] = follow
	return nil
}

func (m *mockFollowRepo) Get(ctx context.Context, follower, followee string) (*Follow, error) {
	if f, ok := m.edges[key(follower, followee)]; ok {
		return f, nil
	}
	return nil, ErrFollowNotFound
}

func (m *mockFollowRepo) Update(ctx context.Context, follow *Follow) error {
	k := key(follow.Follower, follow.Followee)
	if _, ok := m.edges[k]; !ok {
		return ErrFollowNotFound
	}
	m.edges[k] = follow
	return nil
}

func (m *mockFollowRepo) ListByFollower(ctx context.Context, follower string) ([]*Follow, error) {
	var out []*Follow
	for _, f := range m.edges {
		if f.Follower == follower {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFollowRepo) ListByFollowee(ctx context.Context, followee string) ([]*Follow, error) {
	var out []*Follow
	for _, f := range m.edges {
		if f.Followee == followee {
			out = append(out, f)
		}
	}
	return out, nil
}

const (
	alice = "http://local.example/authors/alice/"
	bob   = "http://local.example/authors/bob/"
)

func TestRequestFollow(t *testing.T) {
	repo := newMockFollowRepo()
	svc := NewService(repo)

	follow, err := svc.Request(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.False(t, follow.Bidirectional)
	assert.False(t, follow.Rejected)
}

func TestRequestSelfFollowRejected(t *testing.T) {
	svc := NewService(newMockFollowRepo())
	_, err := svc.Request(context.Background(), alice, alice)
	assert.True(t, apperrors.IsInvalidField(err))
}

func TestRequestDuplicateConflicts(t *testing.T) {
	svc := NewService(newMockFollowRepo())
	ctx := context.Background()

	_, err := svc.Request(ctx, alice, bob)
	require.NoError(t, err)

	_, err = svc.Request(ctx, alice, bob)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAcceptMirrorsBidirectionalEdge(t *testing.T) {
	repo := newMockFollowRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Request(ctx, alice, bob)
	require.NoError(t, err)

	// Bob accepts: both directions become bidirectional.
	require.NoError(t, svc.Accept(ctx, bob, alice))

	forward, err := repo.Get(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, forward.Bidirectional)

	mirror, err := repo.Get(ctx, bob, alice)
	require.NoError(t, err)
	assert.True(t, mirror.Bidirectional)
}

func TestAcceptMissingRequestIsNotFound(t *testing.T) {
	svc := NewService(newMockFollowRepo())
	err := svc.Accept(context.Background(), bob, alice)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRejectKeepsEdgeWithoutMirroring(t *testing.T) {
	repo := newMockFollowRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Request(ctx, alice, bob)
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, bob, alice))

	forward, err := repo.Get(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, forward.Rejected)
	assert.False(t, forward.Bidirectional)

	_, err = repo.Get(ctx, bob, alice)
	assert.ErrorIs(t, err, ErrFollowNotFound)
}

func TestListRelationships(t *testing.T) {
	repo := newMockFollowRepo()
	svc := NewService(repo)
	ctx := context.Background()
	carol := "http://local.example/authors/carol/"
	dave := "http://peer.example/authors/dave/"

	// alice -> bob accepted (friends), alice -> carol pending,
	// dave -> alice pending.
	_, err := svc.Request(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, bob, alice))
	_, err = svc.Request(ctx, alice, carol)
	require.NoError(t, err)
	_, err = svc.Request(ctx, dave, alice)
	require.NoError(t, err)

	rel, err := svc.ListRelationships(ctx, alice)
	require.NoError(t, err)

	require.Len(t, rel.Friends, 1)
	assert.Equal(t, bob, rel.Friends[0].Followee)
	require.Len(t, rel.Following, 1)
	assert.Equal(t, carol, rel.Following[0].Followee)
	require.Len(t, rel.Followers, 1)
	assert.Equal(t, dave, rel.Followers[0].Follower)

	ids, err := svc.FriendIDs(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{bob}, ids)
}
