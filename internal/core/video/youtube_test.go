package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"PT14M", 14},
		{"PT1H2M", 62},
		{"PT30S", 0.5},
		{"PT1H2M30S", 62.5},
		{"PT45S", 0.75},
		{"P1D", 0}, // 超出支援格式，回 0 交給短影音過濾
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, parseISODuration(tc.in), 1e-9, "input=%q", tc.in)
	}
}
