package gpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIDSetContains verifies membership lookups on the sorted set.
func TestIDSetContains(t *testing.T) {
	s := IDSet{2, 6, 9}
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(6))
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(7))
	assert.False(t, IDSet(nil).Contains(1))
}

// TestNormalizeIDs verifies sorting, deduplication, and that an empty input
// stays nil.
func TestNormalizeIDs(t *testing.T) {
	assert.Equal(t, IDSet{2, 5, 7}, normalizeIDs([]uint16{7, 5, 2, 5}))
	assert.Equal(t, IDSet{1}, normalizeIDs([]uint16{1, 1, 1}))
	assert.Nil(t, normalizeIDs(nil))
	assert.Nil(t, normalizeIDs([]uint16{}))
}

// TestIDSetComplement verifies the complement inverts membership over
// 1 through max.
func TestIDSetComplement(t *testing.T) {
	assert.Equal(t, IDSet{1, 3, 5}, IDSet{2, 4}.complement(5))
	assert.Equal(t, IDSet{1, 2}, IDSet(nil).complement(2))
	assert.Nil(t, IDSet{1, 2, 3}.complement(3))
	assert.Nil(t, IDSet(nil).complement(0))
}
