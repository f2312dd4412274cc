package storage

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
)

const (
	healthCacheTTL   = 5 * time.Minute
	healthCachePurge = 10 * time.Minute
)

// HealthChecker answers "which of this asset's URLs is alive" with a HEAD
// request, caching the verdict per URL for five minutes.
type HealthChecker struct {
	client *resty.Client
	cache  *cache.Cache
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		client: resty.New().SetTimeout(10 * time.Second),
		cache:  cache.New(healthCacheTTL, healthCachePurge),
	}
}

// Healthy reports whether the URL answers a HEAD request with a 2xx.
func (h *HealthChecker) Healthy(url string) bool {
	if url == "" {
		return false
	}
	if cached, found := h.cache.Get(url); found {
		return cached.(bool)
	}

	resp, err := h.client.R().Head(url)
	healthy := err == nil && !resp.IsError()
	h.cache.Set(url, healthy, cache.DefaultExpiration)
	return healthy
}

// PickURL returns the first healthy URL, preferring primary. When neither
// answers, the primary is returned anyway so callers always get a URL.
func (h *HealthChecker) PickURL(primaryURL, backupURL string) (string, bool) {
	if h.Healthy(primaryURL) {
		return primaryURL, true
	}
	if h.Healthy(backupURL) {
		return backupURL, true
	}
	if primaryURL != "" {
		return primaryURL, false
	}
	return backupURL, false
}

var checker = NewHealthChecker()

// Checker returns the package-level health checker.
func Checker() *HealthChecker {
	return checker
}
