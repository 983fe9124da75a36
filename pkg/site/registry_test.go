package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    site.Policy
		wantErr bool
	}{
		{"Strict", site.Strict, false},
		{"lax", site.Lax, false},
		{" NONE ", site.None, false},
		{"", "", true},
		{"undefined", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := site.ParsePolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, site.ErrInvalidPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	r := site.Default()

	require.Equal(t, 3, r.Len())
	assert.Equal(t, []site.Site{
		{Host: "strict.test", Name: "website A", Policy: site.Strict},
		{Host: "lax.test", Name: "website B", Policy: site.Lax},
		{Host: "none.test", Name: "website C", Policy: site.None},
	}, r.All())
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()
	r, err := site.New(
		site.Site{Host: "strict.test", Name: "A", Policy: site.Strict},
		site.Site{Host: "localhost:8081", Name: "B", Policy: site.Lax},
		site.Site{Host: "localhost", Name: "C", Policy: site.None},
	)
	require.NoError(t, err)

	tests := []struct {
		host     string
		wantName string
		wantErr  bool
	}{
		{"strict.test", "A", false},
		{"STRICT.test", "A", false},
		{"strict.test:80", "A", false},
		{"localhost:8081", "B", false},
		{"localhost:8082", "C", false},
		{"localhost", "C", false},
		{"lax.test", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()
			s, err := r.Lookup(tt.host)
			if tt.wantErr {
				assert.ErrorIs(t, err, site.ErrSiteNotFound)
				assert.Equal(t, site.Site{}, s, "not found must not fall back to another entry")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, s.Name)
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := site.New(site.Site{Host: "", Policy: site.Lax})
	assert.ErrorIs(t, err, site.ErrInvalidSite)

	_, err = site.New(site.Site{Host: "a.test", Policy: "Sometimes"})
	assert.ErrorIs(t, err, site.ErrInvalidPolicy)

	_, err = site.New(
		site.Site{Host: "a.test", Policy: site.Lax},
		site.Site{Host: "A.test", Policy: site.Strict},
	)
	assert.ErrorIs(t, err, site.ErrInvalidSite)
}

func TestNew_NameDefaultsToHost(t *testing.T) {
	t.Parallel()
	r, err := site.New(site.Site{Host: "a.test", Policy: site.Lax})
	require.NoError(t, err)

	s, err := r.Lookup("a.test")
	require.NoError(t, err)
	assert.Equal(t, "a.test", s.Name)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	t.Parallel()
	r := site.Default()

	all := r.All()
	all[0].Name = "changed"

	s, err := r.Lookup("strict.test")
	require.NoError(t, err)
	assert.Equal(t, "website A", s.Name)
}
