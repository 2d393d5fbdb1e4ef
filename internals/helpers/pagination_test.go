package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	meta := BuildPagination(p, 35, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 10, meta.Count)
}

func TestBuildPagination_LastPage(t *testing.T) {
	p := Paging{Page: 4, PerPage: 10, Offset: 30, Limit: 10}

	meta := BuildPagination(p, 35, 5)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 5, meta.Count)
}

func TestBuildPagination_Empty(t *testing.T) {
	p := Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}

	meta := BuildPagination(p, 0, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
