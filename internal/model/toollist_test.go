package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTools_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		tools []Tool
	}{
		{"empty list", []Tool{}},
		{"nil list", nil},
		{"single tool", []Tool{{Name: "T1", Description: "Face"}}},
		{"ordered sequence", []Tool{
			{Name: "T1", Description: "Face"},
			{Name: "T2", Description: "Rough OD"},
			{Name: "T3", Description: "Drill 5mm"},
		}},
		{"delimiter-like content", []Tool{
			{Name: `T1,"T2"`, Description: `{"nested": [1,2]}`},
			{Name: "a:b\nc", Description: `back\slash and "quotes"`},
		}},
		{"blank fields preserved", []Tool{{Name: "", Description: ""}, {Name: "T2", Description: ""}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := EncodeTools(tc.tools)
			require.NoError(t, err)
			require.NotEmpty(t, encoded)

			decoded, err := DecodeTools(encoded)
			require.NoError(t, err)

			if len(tc.tools) == 0 {
				assert.Empty(t, decoded)
			} else {
				assert.Equal(t, tc.tools, decoded)
			}
		})
	}
}

func TestEncodeTools_EmptyIsStable(t *testing.T) {
	encoded, err := EncodeTools(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodeTools_Malformed(t *testing.T) {
	cases := []string{
		`{"name": "T1"}`,     // object, not array
		`[{"name": "T1"`,     // truncated
		`[{"name": 42}]`,     // wrong field type
		`not json at all`,    // garbage
		`[{"name":"a"}] x`,   // trailing garbage
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			tools, err := DecodeTools(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedToolData))
			assert.Nil(t, tools, "failed decode must not return a partial list")
		})
	}
}

func TestDecodeTools_EmptyAndNull(t *testing.T) {
	for _, input := range []string{"", "  ", "null"} {
		tools, err := DecodeTools(input)
		require.NoError(t, err)
		assert.Empty(t, tools)
	}
}
