package intelligence

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSalesPageExtractsText(t *testing.T) {
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	page := `<html><head><title>HydroMug</title></head>
	<body><h1>The last mug you'll ever buy</h1><p>12 hour battery. $49.</p></body></html>`
	httpmock.RegisterResponder("GET", "https://competitor.example.com/sales",
		httpmock.NewStringResponder(200, page))

	html, text, err := fetchSalesPage("https://competitor.example.com/sales")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>")
	assert.Contains(t, text, "The last mug you'll ever buy")
	assert.Contains(t, text, "12 hour battery")
	assert.NotContains(t, text, "<h1>")
}

func TestFetchSalesPageTruncatesHugePages(t *testing.T) {
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	page := "<html><body><p>" + strings.Repeat("buy now ", 10000) + "</p></body></html>"
	httpmock.RegisterResponder("GET", "https://competitor.example.com/huge",
		httpmock.NewStringResponder(200, page))

	_, text, err := fetchSalesPage("https://competitor.example.com/huge")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), maxPageTextLen)
}

func TestFetchSalesPageTruncationKeepsValidUTF8(t *testing.T) {
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	// Multi-byte runes straddle every possible cut point
	page := "<html><body><p>" + strings.Repeat("größer-ständig-日本語 ", 2000) + "</p></body></html>"
	httpmock.RegisterResponder("GET", "https://competitor.example.com/utf8",
		httpmock.NewStringResponder(200, page))

	_, text, err := fetchSalesPage("https://competitor.example.com/utf8")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), maxPageTextLen)
	assert.True(t, utf8.ValidString(text))
}

func TestFetchSalesPageErrorStatus(t *testing.T) {
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://competitor.example.com/gone",
		httpmock.NewStringResponder(404, "not found"))

	_, _, err := fetchSalesPage("https://competitor.example.com/gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch sales page")
}
