package Caches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_HitRate(t *testing.T) {
	assert.Zero(t, Stats{}.HitRate())
	assert.Zero(t, Stats{Sets: 4, Evictions: 2}.HitRate())
	assert.Equal(t, 1.0, Stats{Hits: 3}.HitRate())
	assert.InDelta(t, 0.75, Stats{Hits: 3, Misses: 1}.HitRate(), 1e-12)
}
