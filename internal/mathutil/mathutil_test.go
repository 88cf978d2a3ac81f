package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   int
		res uint64
	}{
		{0, 0},
		{1, 1},
		{8, 0xFF},
		{23, 0x7FFFFF},
		{52, 0xFFFFFFFFFFFFF},
		{63, math.MaxUint64 >> 1},
		{64, math.MaxUint64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Mask(test.n))
		})
	}
}
