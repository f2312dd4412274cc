package storage

import (
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func newTestChecker(t *testing.T) *HealthChecker {
	h := NewHealthChecker()
	httpmock.ActivateNonDefault(h.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return h
}

func TestHealthyURL(t *testing.T) {
	h := newTestChecker(t)

	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(200, ""))
	httpmock.RegisterResponder("HEAD", "https://b2.example.com/a.png",
		httpmock.NewStringResponder(404, ""))

	assert.True(t, h.Healthy("https://r2.example.com/a.png"))
	assert.False(t, h.Healthy("https://b2.example.com/a.png"))
	assert.False(t, h.Healthy(""))
}

func TestHealthVerdictIsCached(t *testing.T) {
	h := newTestChecker(t)

	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(200, ""))

	assert.True(t, h.Healthy("https://r2.example.com/a.png"))

	// Endpoint starts failing; the cached verdict still answers
	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(500, ""))

	assert.True(t, h.Healthy("https://r2.example.com/a.png"))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestPickURLPrefersPrimary(t *testing.T) {
	h := newTestChecker(t)

	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(200, ""))
	httpmock.RegisterResponder("HEAD", "https://b2.example.com/a.png",
		httpmock.NewStringResponder(200, ""))

	url, healthy := h.PickURL("https://r2.example.com/a.png", "https://b2.example.com/a.png")
	assert.True(t, healthy)
	assert.Equal(t, "https://r2.example.com/a.png", url)
}

func TestPickURLFailsOverToBackup(t *testing.T) {
	h := newTestChecker(t)

	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(404, ""))
	httpmock.RegisterResponder("HEAD", "https://b2.example.com/a.png",
		httpmock.NewStringResponder(200, ""))

	url, healthy := h.PickURL("https://r2.example.com/a.png", "https://b2.example.com/a.png")
	assert.True(t, healthy)
	assert.Equal(t, "https://b2.example.com/a.png", url)
}

func TestPickURLBothDownStillAnswers(t *testing.T) {
	h := newTestChecker(t)

	httpmock.RegisterResponder("HEAD", "https://r2.example.com/a.png",
		httpmock.NewStringResponder(503, ""))
	httpmock.RegisterResponder("HEAD", "https://b2.example.com/a.png",
		httpmock.NewStringResponder(503, ""))

	url, healthy := h.PickURL("https://r2.example.com/a.png", "https://b2.example.com/a.png")
	assert.False(t, healthy)
	assert.Equal(t, "https://r2.example.com/a.png", url)
}
