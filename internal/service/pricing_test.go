package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		discount int64
		want     int64
	}{
		{"zero discount returns total unchanged", 100, 0, 100},
		{"ten percent", 100, 10, 90},
		{"half", 200, 50, 100},
		{"full discount", 100, 100, 0},
		{"rounds toward the buyer", 99, 10, 90}, // 99 - 9.9 truncated
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyDiscount(tc.total, tc.discount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyDiscountRejectsOutOfRange(t *testing.T) {
	for _, d := range []int64{-1, -5, 101, 150} {
		_, err := ApplyDiscount(100, d)
		assert.ErrorIs(t, err, ErrInvalidDiscount, "discount=%d", d)
	}
}
