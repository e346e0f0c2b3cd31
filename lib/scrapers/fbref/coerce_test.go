package fbref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"90", 90},
		{"45+2", 45},
		{"90+7", 90},
		{"90.0", 90},
		{"", 0},
		{"  ", 0},
		{"n/a", 0},
		{"0", 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ParseMinutes(c.in), "input %q", c.in)
	}
}

func TestParseOptionalInt(t *testing.T) {
	require.Nil(t, parseOptionalInt(""))
	require.Nil(t, parseOptionalInt("garbage"))

	v := parseOptionalInt("3")
	require.NotNil(t, v)
	require.Equal(t, 3, *v)

	v = parseOptionalInt("65.0")
	require.NotNil(t, v)
	require.Equal(t, 65, *v)
}

func TestParseCountDefaultsEmptyToZero(t *testing.T) {
	v := parseCount("")
	require.NotNil(t, v)
	require.Equal(t, 0, *v)

	v = parseCount("4")
	require.NotNil(t, v)
	require.Equal(t, 4, *v)
}

func TestParseOptionalFloat(t *testing.T) {
	require.Nil(t, parseOptionalFloat(""))
	require.Nil(t, parseOptionalFloat("x"))

	v := parseOptionalFloat("66.7")
	require.NotNil(t, v)
	require.InDelta(t, 66.7, *v, 0.001)
}
