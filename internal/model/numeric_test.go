package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericFloat64(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *float64
		wantErr bool
		set     bool
	}{
		{name: "number", body: `12.5`, want: ptr(12.5), set: true},
		{name: "numeric string", body: `" 1200 "`, want: ptr(1200.0), set: true},
		{name: "null", body: `null`},
		{name: "blank string", body: `"  "`},
		{name: "word", body: `"abc"`, wantErr: true, set: true},
		{name: "nan", body: `"NaN"`, wantErr: true, set: true},
		{name: "bool", body: `true`, wantErr: true, set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tt.body), &n))
			assert.Equal(t, tt.set, n.IsSet())

			got, err := n.Float64()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericInt(t *testing.T) {
	v, err := NumericOf("3").Int()
	require.NoError(t, err)
	assert.Equal(t, 3, *v)

	_, err = NumericOf(2.5).Int()
	assert.ErrorIs(t, err, ErrNotInteger)

	v, err = NumericOf(nil).Int()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func ptr[T any](v T) *T {
	return &v
}
