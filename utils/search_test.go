package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDampedSearch(t *testing.T) {
	// Find a parameter whose floor is 7
	ds := DampedSearch{Start: 2, Increment: 3, Damping: 0.9, MaxIter: 100}
	param, iterations, err := ds.Run(func(p float64) int {
		switch {
		case p >= 8:
			return -1
		case p < 7:
			return 1
		}
		return 0
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, param, 7.)
	assert.Less(t, param, 8.)
	assert.Less(t, iterations, 100)
}

func TestDampedSearchImmediateHit(t *testing.T) {
	ds := DampedSearch{Start: 5, Increment: 1, MaxIter: 10}
	param, iterations, err := ds.Run(func(p float64) int { return 0 })
	assert.NoError(t, err)
	assert.Equal(t, 5., param)
	assert.Equal(t, 0, iterations)
}

func TestDampedSearchNonConvergence(t *testing.T) {
	ds := DampedSearch{Start: 0, Increment: 1, Damping: 0.9, MaxIter: 25}
	_, iterations, err := ds.Run(func(p float64) int { return 1 }) // target is unreachable
	assert.True(t, errors.Is(err, ErrSearchDidNotConverge))
	assert.Equal(t, 25, iterations)
}
