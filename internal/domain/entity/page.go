package entity

import (
	"math"
	"slices"
)

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// MaxPage keeps (Page-1)*Limit within int for any accepted limit.
	MaxPage = math.MaxInt / MaxPageLimit
)

// Sortable fields shared by the collections.
const (
	SortFieldName      = "name"
	SortFieldCreatedAt = "created_at"
)

// PageRequest describes one page of a list query.
type PageRequest struct {
	Page   int
	Limit  int
	SortBy string
	Order  SortOrder
}

// Normalize fills defaults and clamps the request. SortBy falls back to
// defaultSort when it is not one of allowed.
func (p PageRequest) Normalize(defaultSort string, defaultOrder SortOrder, allowed ...string) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if !slices.Contains(allowed, p.SortBy) {
		p.SortBy = defaultSort
	}
	if p.Order != SortAsc && p.Order != SortDesc {
		p.Order = defaultOrder
	}

	return p
}

// Offset returns the number of records to skip. It saturates at math.MaxInt
// instead of wrapping for requests that were not normalized.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}

	return (p.Page - 1) * p.Limit
}

// Page is one page of a list result.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}
