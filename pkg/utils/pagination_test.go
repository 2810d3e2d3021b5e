package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageLimit, p.Limit)

	p = GetPaginationParams(2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = GetPaginationParams(1, 5000)
	assert.Equal(t, MaxPageLimit, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	p := PaginationParams{Page: 1, Limit: 20}
	assert.Equal(t, 0, p.CalculateOffset())

	p = PaginationParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.CalculateOffset())

	p = PaginationParams{Page: 0, Limit: 20}
	assert.Equal(t, 0, p.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(25, 2, 10)
	assert.Equal(t, 2, meta.Current)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)

	empty := CalculateMeta(0, 1, 10)
	assert.Equal(t, 0, empty.Pages)

	noLimit := CalculateMeta(15, 1, 0)
	assert.Equal(t, 1, noLimit.Current)
	assert.Equal(t, 15, noLimit.Limit)
	assert.Equal(t, 1, noLimit.Pages)
}
