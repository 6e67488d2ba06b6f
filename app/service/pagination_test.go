package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPageLimit(t *testing.T) {
	page, limit := clampPageLimit(2, 25)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, limit)

	// limit=0 would divide the page count by zero and issue LIMIT 0 queries.
	page, limit = clampPageLimit(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)

	page, limit = clampPageLimit(-3, -10)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)

	page, limit = clampPageLimit(1, 5000)
	assert.Equal(t, 1, page)
	assert.Equal(t, maxPageLimit, limit)
}
