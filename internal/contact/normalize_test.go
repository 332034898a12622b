package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"bare domain":       {input: "techcorpsolutions.com", want: "techcorpsolutions.com"},
		"mixed case spaces": {input: "  TechCorpSolutions.COM ", want: "techcorpsolutions.com"},
		"website url":       {input: "https://www.techcorp.io/about?utm_source=x", want: "techcorp.io"},
		"port":              {input: "http://globalsystems.com:8080", want: "globalsystems.com"},
		"unicode":           {input: "bücher.example", want: "xn--bcher-kva.example"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeDomain(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDomain_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "localhost", "-bad-.com", "a..com"} {
		_, err := NormalizeDomain(input)
		assert.Truef(t, errors.Is(err, ErrInvalidDomain), "expected ErrInvalidDomain for %q, got %v", input, err)
	}
}

func TestNormalizer_Email(t *testing.T) {
	n := NewNormalizer("")

	got := n.Email(" J.Anderson@TechCorp.com ")
	require.NotNil(t, got)
	assert.Equal(t, "j.anderson@techcorp.com", *got)

	assert.Nil(t, n.Email(""))
	assert.Nil(t, n.Email("not-an-email"))
	assert.Nil(t, n.Email("someone@localhost"))
}

func TestNormalizer_Phone(t *testing.T) {
	n := NewNormalizer("us")
	assert.Equal(t, "US", n.DefaultRegion)

	got := n.Phone("(650) 253-0000")
	require.NotNil(t, got)
	assert.Equal(t, "+16502530000", *got)

	got = n.Phone("+1 650 253 0000")
	require.NotNil(t, got)
	assert.Equal(t, "+16502530000", *got)

	assert.Nil(t, n.Phone(""))
	assert.Nil(t, n.Phone("12"))
	assert.Nil(t, n.Phone("call me maybe"))
}

func TestNormalizer_LinkedIn(t *testing.T) {
	n := NewNormalizer("US")

	got := n.LinkedIn("linkedin.com/in/janderson?utm_source=apollo")
	require.NotNil(t, got)
	assert.Equal(t, "https://linkedin.com/in/janderson", *got)

	got = n.LinkedIn("http://www.linkedin.com/in/schen")
	require.NotNil(t, got)
	assert.Equal(t, "https://www.linkedin.com/in/schen", *got)

	assert.Nil(t, n.LinkedIn(""))
	assert.Nil(t, n.LinkedIn("https://twitter.com/techcorp"))
	assert.Nil(t, n.LinkedIn("https://notlinkedin.com/in/x"))
}
