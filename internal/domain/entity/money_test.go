package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole amount", input: "19", want: 1900},
		{name: "two decimals", input: "19.99", want: 1999},
		{name: "single decimal", input: "4.5", want: 450},
		{name: "sub-cent rounds to nearest", input: "10.999", want: 1100},
		{name: "leading whitespace", input: " 12.34 ", want: 1234},
		{name: "smallest positive", input: "0.01", want: 1},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "rounds to zero rejected", input: "0.001", wantErr: true},
		{name: "negative rejected", input: "-3.50", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "not a number rejected", input: "abc", wantErr: true},
		{name: "trailing garbage rejected", input: "12.99x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "19.99", FormatPrice(1999))
	assert.Equal(t, "0.05", FormatPrice(5))
	assert.Equal(t, "12.00", FormatPrice(1200))
	assert.Equal(t, "0.00", FormatPrice(0))
}

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ID: 1, Price: 1299},
		{ID: 2, Price: 3450},
		{ID: 1, Price: 1299},
	}

	assert.Equal(t, int64(6048), CartTotal(items))
	assert.Zero(t, CartTotal(nil))
}
