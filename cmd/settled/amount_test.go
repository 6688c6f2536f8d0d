package main

import (
	"math"
	"testing"

	"github.com/iov-one/settle/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    int64
		wantErr *errors.Error
	}{
		"empty is zero":         {in: "", want: 0},
		"whole units":           {in: "10", want: 100000000},
		"fraction":              {in: "10.5", want: 105000000},
		"smallest unit":         {in: "0.0000001", want: 1},
		"negative":              {in: "-1.25", want: -12500000},
		"too many places":       {in: "0.00000001", wantErr: errors.ErrAmount},
		"not a number":          {in: "ten", wantErr: errors.ErrAmount},
		"largest amount":        {in: "922337203685.4775807", want: math.MaxInt64},
		"larger than int64":     {in: "922337203685.4775808", wantErr: errors.ErrOverflow},
		"trailing zeros accept": {in: "1.5000000", want: 15000000},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := parseAmount(tc.in)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.5000000", formatAmount(105000000))
	assert.Equal(t, "0.0000001", formatAmount(1))
	assert.Equal(t, "-1.2500000", formatAmount(-12500000))

	v, err := parseAmount(formatAmount(123456789))
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), v)
}
