package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromQuery_Defaults(t *testing.T) {
	t.Parallel()

	p, err := FromQuery(url.Values{})
	require.NoError(t, err)
	require.Equal(t, DefaultLimit, p.Limit)
	require.Equal(t, 0, p.Offset)
}

func TestFromQuery_ExplicitValues(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("limit", "10")
	q.Set("offset", "5")

	p, err := FromQuery(q)
	require.NoError(t, err)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 5, p.Offset)
}

func TestFromQuery_LimitBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		limit string
		ok    bool
	}{
		{"1", true},
		{"100", true},
		{"0", false},
		{"101", false},
		{"-1", false},
		{"abc", false},
	}
	for _, tc := range cases {
		q := url.Values{}
		q.Set("limit", tc.limit)
		_, err := FromQuery(q)
		if tc.ok {
			require.NoError(t, err, "limit=%s", tc.limit)
		} else {
			require.Error(t, err, "limit=%s", tc.limit)
		}
	}
}

func TestFromQuery_OffsetBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		offset string
		ok     bool
	}{
		{"0", true},
		{"500", true},
		{"-1", false},
		{"abc", false},
	}
	for _, tc := range cases {
		q := url.Values{}
		q.Set("offset", tc.offset)
		_, err := FromQuery(q)
		if tc.ok {
			require.NoError(t, err, "offset=%s", tc.offset)
		} else {
			require.Error(t, err, "offset=%s", tc.offset)
		}
	}
}

func TestNewPage_CarriesMetadata(t *testing.T) {
	t.Parallel()

	p := NewPage([]string{"a", "b"}, 7, Params{Limit: 2, Offset: 4})
	require.Equal(t, []string{"a", "b"}, p.Items)
	require.Equal(t, int64(7), p.Total)
	require.Equal(t, 2, p.Limit)
	require.Equal(t, 4, p.Offset)
}

func TestNewPage_NilItemsNormalized(t *testing.T) {
	t.Parallel()

	p := NewPage[string](nil, 0, Default())
	require.NotNil(t, p.Items)
	require.Len(t, p.Items, 0)
}
