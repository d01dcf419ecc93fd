package djmag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameFromSlug(t *testing.T) {
	testCases := []struct {
		slug     string
		expected string
	}{
		{"martin-garrix", "Martin Garrix"},
		{"dj-x", "Dj X"},
		{"armin-van-buuren", "Armin Van Buuren"},
		{"p%C3%A9ggy-gou", "Péggy Gou"},
		{"DIMITRI-VEGAS", "Dimitri Vegas"},
		{"above%20%26%20beyond", "Above & Beyond"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NameFromSlug(test.slug))
	}
}

func TestYearFromURL(t *testing.T) {
	year, err := yearFromURL("https://djmag.com/top100djs/2024/1/john-doe")
	require.NoError(t, err)
	require.Equal(t, 2024, year)

	year, err = yearFromURL("/top100djs/2010/5/dj-x")
	require.NoError(t, err)
	require.Equal(t, 2010, year)

	_, err = yearFromURL("john-doe")
	require.Error(t, err)

	_, err = yearFromURL("https://djmag.com/top100djs/notayear/1/john-doe")
	require.Error(t, err)
}
