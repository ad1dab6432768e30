package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"Tidepool/internal/core/apperrors"
)

func TestParseQueryDefaults(t *testing.T) {
	p, err := ParseQuery(url.Values{})
	assert.NoError(t, err)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 50, p.Size)
}

func TestParseQueryCapsSize(t *testing.T) {
	q := url.Values{"size": {"1000"}}
	p, err := ParseQuery(q)
	assert.NoError(t, err)
	assert.Equal(t, 100, p.Size)
}

func TestParseQueryRejectsNonIntegers(t *testing.T) {
	for _, key := range []string{"page", "size"} {
		q := url.Values{key: {"banana"}}
		_, err := ParseQuery(q)
		assert.True(t, apperrors.IsInvalidField(err), "expected InvalidField for %s", key)
	}
}

func TestParseQueryAllowsNegativePage(t *testing.T) {
	// Negative pages are handled as out-of-range-low by Resolve, not as a
	// parse error.
	q := url.Values{"page": {"-1"}}
	p, err := ParseQuery(q)
	assert.NoError(t, err)
	assert.Equal(t, -1, p.Page)
}

func TestResolveSinglePage(t *testing.T) {
	// 3 items, size 50: everything fits on external page 0.
	pg := Resolve(Params{Page: 0, Size: 50}, 3)

	assert.True(t, pg.InRange)
	assert.Equal(t, 1, pg.Internal)
	assert.Equal(t, 1, pg.NumPages)
	assert.Equal(t, 0, pg.Offset)
	assert.Equal(t, 50, pg.Limit)

	links := pg.Links("http://example.com/posts/abc/comments")
	assert.Empty(t, links.Next)
	assert.Empty(t, links.Previous)
	assert.Empty(t, links.First)
	assert.Empty(t, links.Last)
}

func TestResolveMiddlePage(t *testing.T) {
	// 25 items, size 10: pages are external 0, 1, 2. External page 1 has
	// both neighbours.
	pg := Resolve(Params{Page: 1, Size: 10}, 25)

	assert.True(t, pg.InRange)
	assert.Equal(t, 2, pg.Internal)
	assert.Equal(t, 3, pg.NumPages)
	assert.Equal(t, 10, pg.Offset)

	links := pg.Links("http://example.com/posts/abc/comments")
	assert.Equal(t, "http://example.com/posts/abc/comments?size=10&page=2", links.Next)
	assert.Equal(t, "http://example.com/posts/abc/comments?size=10&page=0", links.Previous)
}

func TestResolveLastPageHasNoNext(t *testing.T) {
	pg := Resolve(Params{Page: 2, Size: 10}, 25)

	assert.True(t, pg.InRange)
	assert.Equal(t, 3, pg.Internal)
	assert.Equal(t, 20, pg.Offset)

	links := pg.Links("http://example.com/c")
	assert.Empty(t, links.Next)
	assert.Equal(t, "http://example.com/c?size=10&page=1", links.Previous)
}

func TestResolvePastEndGetsLastLink(t *testing.T) {
	// Only 1 page exists; external page 5 is past the end and the last
	// link points back at external page 0.
	pg := Resolve(Params{Page: 5, Size: 50}, 3)

	assert.False(t, pg.InRange)
	links := pg.Links("http://example.com/c")
	assert.Equal(t, "http://example.com/c?size=50&page=0", links.Last)
	assert.Empty(t, links.First)
	assert.Empty(t, links.Next)
	assert.Empty(t, links.Previous)
}

func TestResolveBeforeStartGetsFirstLink(t *testing.T) {
	pg := Resolve(Params{Page: -1, Size: 50}, 3)

	assert.False(t, pg.InRange)
	links := pg.Links("http://example.com/c")
	assert.Equal(t, "http://example.com/c?size=50&page=0", links.First)
	assert.Empty(t, links.Last)
}

func TestResolveEmptyCollection(t *testing.T) {
	// Zero items still resolve to one empty in-range page at external 0.
	pg := Resolve(Params{Page: 0, Size: 50}, 0)

	assert.True(t, pg.InRange)
	assert.Equal(t, 1, pg.NumPages)

	links := pg.Links("http://example.com/c")
	assert.Empty(t, links.Next)
	assert.Empty(t, links.Previous)
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, 3, ClampSize(50, 3))
	assert.Equal(t, 10, ClampSize(10, 10))
	assert.Equal(t, 10, ClampSize(10, 25))
}
