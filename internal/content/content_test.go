package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesIncludesPricing(t *testing.T) {
	pages, err := Pages()
	require.NoError(t, err)
	require.Contains(t, pages, "home")
	require.Contains(t, pages, "about")
	require.Contains(t, pages, "pricing")

	pricing := pages["pricing"]
	require.Len(t, pricing.Plans, 3)
	assert.Equal(t, "Starter", pricing.Plans[0].Name)
	assert.Equal(t, "$49", pricing.Plans[0].Price)
	assert.Equal(t, "$149", pricing.Plans[1].Price)
	assert.True(t, pricing.Plans[1].Popular)
	assert.Equal(t, "Custom", pricing.Plans[2].Price)

	require.Len(t, pricing.AddOns, 3)
	assert.Equal(t, "API Access", pricing.AddOns[1].Name)
	assert.Equal(t, "$99/month", pricing.AddOns[2].Price)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := parse([]byte("pages:\n  - slug: home\n  - slug: home\n"))
	assert.Error(t, err)

	_, err = parse([]byte("pages:\n  - title: untitled\n"))
	assert.Error(t, err)
}
