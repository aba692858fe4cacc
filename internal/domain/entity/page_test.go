package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{
			name: "zero value gets defaults",
			in:   PageRequest{},
			want: PageRequest{Page: 1, Limit: DefaultPageLimit, SortBy: SortFieldCreatedAt, Order: SortDesc},
		},
		{
			name: "limit clamped",
			in:   PageRequest{Page: 3, Limit: 1000, SortBy: SortFieldName, Order: SortAsc},
			want: PageRequest{Page: 3, Limit: MaxPageLimit, SortBy: SortFieldName, Order: SortAsc},
		},
		{
			name: "huge page clamped",
			in:   PageRequest{Page: math.MaxInt / 10, Limit: 20, SortBy: SortFieldName, Order: SortAsc},
			want: PageRequest{Page: MaxPage, Limit: 20, SortBy: SortFieldName, Order: SortAsc},
		},
		{
			name: "unknown sort and order replaced",
			in:   PageRequest{Page: -2, Limit: -5, SortBy: "password", Order: "random"},
			want: PageRequest{Page: 1, Limit: DefaultPageLimit, SortBy: SortFieldCreatedAt, Order: SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize(SortFieldCreatedAt, SortDesc, SortFieldName, SortFieldCreatedAt)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, Limit: 20}.Offset())
}

func TestPageRequest_OffsetNeverNegative(t *testing.T) {
	pages := []int{1, 2, MaxPage, math.MaxInt / 10, math.MaxInt}

	for _, page := range pages {
		for _, limit := range []int{1, DefaultPageLimit, MaxPageLimit, 1000} {
			req := PageRequest{Page: page, Limit: limit}.Normalize(SortFieldCreatedAt, SortDesc, SortFieldCreatedAt)
			assert.GreaterOrEqual(t, req.Offset(), 0, "page=%d limit=%d", page, limit)

			raw := PageRequest{Page: page, Limit: limit}
			assert.GreaterOrEqual(t, raw.Offset(), 0, "unnormalized page=%d limit=%d", page, limit)
		}
	}
}
