package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default limit", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -3, 10, 0, 10},
		{"zero limit falls back to default", 1, 0, 0, DefaultLimit},
		{"oversized limit is capped", 1, 500, 0, MaxLimit},
		{"limit at the cap is kept", 3, MaxLimit, 200, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfoCapsOversizedLimit(t *testing.T) {
	info := NewPaginationInfo(250, 1, 5000)

	assert.Equal(t, MaxLimit, info.Limit)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNextPage)
}

func TestNewPaginationInfoLastPartialPage(t *testing.T) {
	info := NewPaginationInfo(15, 2, 10)

	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
	assert.Equal(t, int64(15), info.TotalItems)
	assert.False(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
}

func TestNewPaginationInfoMiddlePage(t *testing.T) {
	info := NewPaginationInfo(35, 2, 10)

	assert.Equal(t, 4, info.TotalPages)
	assert.True(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)

	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNextPage)
	assert.False(t, info.HasPrevPage)
}
