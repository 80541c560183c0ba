package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaro(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 1},
		{"one empty", "", "abc", 0},
		{"other empty", "abc", "", 0},
		{"equal single", "a", "a", 1},
		{"different single", "a", "b", 0},
		{"identical", "verbose", "verbose", 1},
		{"disjoint", "abc", "xyz", 0},
		{"transposition", "martha", "marhta", 0.9444},
		{"insertion", "dwayne", "duane", 0.8222},
		{"unicode", "größe", "größe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaro(tt.a, tt.b), 0.0001)
		})
	}
}

func TestJaro_Symmetric(t *testing.T) {
	pairs := [][2]string{{"martha", "marhta"}, {"dwayne", "duane"}, {"output", "outptu"}}
	for _, p := range pairs {
		assert.InDelta(t, Jaro(p[0], p[1]), Jaro(p[1], p[0]), 0.0001, "%s/%s", p[0], p[1])
	}
}

func TestJaroWinkler(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "scale", "scale", 1},
		{"disjoint", "ab", "cd", 0},
		{"transposition", "martha", "marhta", 0.9611},
		{"insertion", "dwayne", "duane", 0.84},
		{"single against double", "z", "zz", 0.85},
		{"no common prefix", "abcd", "xbcd", 0.8333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaroWinkler(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestClosest(t *testing.T) {
	flags := []string{"verbose", "version", "output", "scale"}

	tests := []struct {
		name   string
		target string
		want   string
		found  bool
	}{
		{"typo", "verbos", "verbose", true},
		{"transposed", "outptu", "output", true},
		{"nothing close", "zzz", "", false},
		{"exact", "scale", "scale", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Closest(tt.target, flags, DefaultThreshold)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosest_TieKeepsFirst(t *testing.T) {
	got, found := Closest("ab", []string{"abx", "aby"}, DefaultThreshold)
	assert.True(t, found)
	assert.Equal(t, "abx", got)
}

func TestClosest_ThresholdIsExclusive(t *testing.T) {
	score := JaroWinkler("z", "zz")
	_, found := Closest("z", []string{"zz"}, score)
	assert.False(t, found, "a score equal to the threshold is not suggested")
}
