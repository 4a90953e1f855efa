package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{0.004, 0},
		{0.005, 0.01},
		{0.994, 0.99},
		{0.995, 1},
		{1.005, 1.01},
		{2.675, 2.68},
		{1.0 / 3.0, 0.33},
		{-1.005, -1.01},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Round2(tc.in), "Round2(%v)", tc.in)
	}
}
