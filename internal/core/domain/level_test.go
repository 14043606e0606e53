package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		count int
		max   int
		want  int
	}{
		{"Zero is always level 0", 0, 10, 0},
		{"Zero with floor max", 0, 1, 0},
		{"Just under 15%", 14, 100, 1},
		{"Exactly 15%", 15, 100, 2},
		{"Just under 40%", 39, 100, 2},
		{"Exactly 40%", 40, 100, 3},
		{"Just under 70%", 69, 100, 3},
		{"Exactly 70%", 70, 100, 4},
		{"Peak day", 100, 100, 4},
		{"Single contribution with max 1", 1, 1, 4},
		{"Max below floor is treated as 1", 1, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Level(tt.count, tt.max))
		})
	}
}

func TestLevel_MonotonicAndBounded(t *testing.T) {
	for _, max := range []int{1, 2, 7, 13, 100, 1000} {
		prev := 0
		for c := 0; c <= max; c++ {
			l := domain.Level(c, max)
			assert.GreaterOrEqual(t, l, 0)
			assert.Less(t, l, domain.LevelCount)
			assert.GreaterOrEqual(t, l, prev, "count=%d max=%d", c, max)
			prev = l
		}
	}
}
