package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{0, "0 руб."},
		{999, "999 руб."},
		{3000, "3 000 руб."},
		{12500, "12 500 руб."},
		{1234567, "1 234 567 руб."},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, FormatPrice(tc.price))
	}
}
