package intelligence

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/campaignforge/server/internal/db"
	"github.com/go-resty/resty/v2"
	"github.com/k3a/html2text"
	"go.mongodb.org/mongo-driver/bson"
)

var client = resty.New().SetTimeout(30 * time.Second)

const maxPageTextLen = 24000

// fetchSalesPage downloads the competitor page and reduces it to plain
// text for the extraction prompt. Oversized pages are truncated so the
// prompt stays inside provider context limits.
func fetchSalesPage(pageURL string) (string, string, error) {
	resp, err := client.R().
		SetHeader("User-Agent", "campaignforge-analyzer").
		Get(pageURL)
	if err != nil {
		return "", "", err
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("failed to fetch sales page: %s", resp.Status())
	}

	html := string(resp.Body())
	text := html2text.HTML2Text(html)
	if len(text) > maxPageTextLen {
		// Byte-boundary cut can split a multi-byte rune; drop the partial tail
		text = strings.ToValidUTF8(text[:maxPageTextLen], "")
	}
	if text == "" {
		return "", "", fmt.Errorf("sales page had no extractable text")
	}

	return html, text, nil
}

// archiveRawPage stores the raw HTML in Mongo so analyses can be re-run
// without re-scraping. Failures are logged, never fatal.
func archiveRawPage(pageURL, html string) {
	mongoDB := db.GetMongoDB()
	if mongoDB == nil {
		return
	}

	_, err := mongoDB.Collection("scraped_pages").InsertOne(context.Background(), bson.M{
		"url":        pageURL,
		"html":       html,
		"fetched_at": time.Now(),
	})
	if err != nil {
		log.Printf("Failed to archive scraped page %s: %v", pageURL, err)
	}
}
