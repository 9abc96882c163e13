package dao

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONColumn(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     any
		want    JSONColumn[[]string]
		wantErr bool
	}{
		{
			name: "NULL",
			src:  nil,
			want: JSONColumn[[]string]{},
		},
		{
			name: "字符串",
			src:  `["a","b"]`,
			want: NewJSONColumn([]string{"a", "b"}),
		},
		{
			name: "字节切片",
			src:  []byte(`["c"]`),
			want: NewJSONColumn([]string{"c"}),
		},
		{
			name:    "非法类型",
			src:     123,
			wantErr: true,
		},
		{
			name:    "非法JSON",
			src:     `[`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var col JSONColumn[[]string]
			err := col.Scan(tc.src)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, col)
		})
	}
}

func TestJSONColumn_Value(t *testing.T) {
	t.Parallel()

	val, err := JSONColumn[json.RawMessage]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, val)

	val, err = NewJSONColumn(json.RawMessage(`{"success":1}`)).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"success":1}`, val)
}
