// Package pagination translates the zero-indexed wire paging protocol to the
// one-indexed pager used internally. The arithmetic here is part of the
// federation contract and must not drift: external page N is internal page
// N+1, and navigation links are emitted in external numbering.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"Tidepool/internal/core/apperrors"
)

const (
	// DefaultSize is the page size used when the request does not name one.
	DefaultSize = 50

	// MaxSize caps the number of items served per page.
	MaxSize = 100
)

// Params holds the externally supplied paging parameters, zero-indexed.
type Params struct {
	Page int
	Size int
}

// ParseQuery extracts page and size from query parameters, applying defaults
// and the size cap. Non-integer values fail with InvalidField.
func ParseQuery(q url.Values) (Params, error) {
	p := Params{Page: 0, Size: DefaultSize}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, apperrors.NewInvalidField("page", raw)
		}
		p.Page = n
	}

	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, apperrors.NewInvalidField("size", raw)
		}
		if n < 1 {
			return p, apperrors.NewInvalidField("size", raw)
		}
		p.Size = n
	}

	if p.Size > MaxSize {
		p.Size = MaxSize
	}

	return p, nil
}

// Page describes one resolved page of an ordered collection.
type Page struct {
	Internal int  // one-indexed page number
	NumPages int  // total pages; at least 1, even for an empty collection
	Count    int  // total items in the collection
	Size     int  // requested page size after capping
	Offset   int  // item offset of the window when in range
	Limit    int  // window length when in range
	InRange  bool
}

// Resolve maps external paging parameters onto a collection of count items.
// An out-of-range page is not an error: it yields an empty window and the
// caller emits a single first/last recovery link instead.
func Resolve(p Params, count int) Page {
	numPages := (count + p.Size - 1) / p.Size
	if numPages < 1 {
		// An empty collection still has one (empty) page.
		numPages = 1
	}

	pg := Page{
		Internal: p.Page + 1,
		NumPages: numPages,
		Count:    count,
		Size:     p.Size,
	}

	if pg.Internal < 1 || pg.Internal > numPages {
		return pg
	}

	pg.InRange = true
	pg.Offset = (pg.Internal - 1) * p.Size
	pg.Limit = p.Size
	return pg
}

// Links holds the navigation URIs attached to a paged response. Only the
// links that apply are set.
type Links struct {
	First    string
	Last     string
	Next     string
	Previous string
}

// Links builds the navigation links for this page against base, in external
// (zero-indexed) numbering. Out of range high gets exactly one last link;
// out of range low exactly one first link. In range, next is present unless
// this is the final page and previous unless this is the first.
func (pg Page) Links(base string) Links {
	var l Links

	ref := func(external int) string {
		return fmt.Sprintf("%s?size=%d&page=%d", base, pg.Size, external)
	}

	if !pg.InRange {
		if pg.Internal > pg.NumPages {
			l.Last = ref(pg.NumPages - 1)
		} else {
			l.First = ref(0)
		}
		return l
	}

	// The internal number is already one past the external index, so the
	// next external page is exactly pg.Internal.
	if pg.Internal != pg.NumPages {
		l.Next = ref(pg.Internal)
	}
	if pg.Internal != 1 {
		l.Previous = ref(pg.Internal - 2)
	}
	return l
}

// ClampSize reports the size field for a served page: the requested size or
// the number of items actually on the page, whichever is smaller.
func ClampSize(requested, served int) int {
	if served < requested {
		return served
	}
	return requested
}
