package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []Tag
	}{
		{name: "nil", values: nil, want: nil},
		{name: "repeated flags", values: []string{"react", "redux"}, want: []Tag{"react", "redux"}},
		{name: "comma separated", values: []string{"react, redux"}, want: []Tag{"react", "redux"}},
		{name: "duplicates collapse", values: []string{"react", "react,redux"}, want: []Tag{"react", "redux"}},
		{name: "blanks dropped", values: []string{" ", "react,,"}, want: []Tag{"react"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseTags(tt.values))
		})
	}
}

func TestStyle_Class(t *testing.T) {
	require.Equal(t, "btn-primary", StyleSelected.Class("btn"))
	require.Equal(t, "label-default", StyleDefault.Class("label"))
	require.Equal(t, "primary", StyleSelected.Class(""))
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("json")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	_, err = ParseOutputFormat("xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output format")
}
